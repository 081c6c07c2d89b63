// Package docfiscal valida e formata documentos fiscais brasileiros usados no
// cadastro da rede de credenciamento: CPF, CNPJ, CEI e CAEPF, além de CEP e
// telefone. Todas as funções aceitam entrada com ou sem máscara.
package docfiscal

import "strings"

// ValidCPF valida o CPF (11 dígitos) pelo algoritmo módulo 11 da Receita
// Federal. Aceita "529.982.247-25" ou "52998224725". Entrada vazia ou com
// quantidade errada de dígitos é inválida; a regra "ausente é permitido"
// pertence à camada de schema, não ao validador.
func ValidCPF(cpf string) bool {
	digits := extractDigits(cpf)
	if len(digits) != 11 || allSameDigit(digits) {
		return false
	}

	// Primeiro dígito verificador: pesos 10..2 sobre os 9 primeiros dígitos.
	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(digits[i]-'0') * (10 - i)
	}
	remainder := (sum * 10) % 11
	if remainder == 10 || remainder == 11 {
		remainder = 0
	}
	if remainder != int(digits[9]-'0') {
		return false
	}

	// Segundo dígito verificador: pesos 11..2 sobre os 10 primeiros dígitos.
	sum = 0
	for i := 0; i < 10; i++ {
		sum += int(digits[i]-'0') * (11 - i)
	}
	remainder = (sum * 10) % 11
	if remainder == 10 || remainder == 11 {
		remainder = 0
	}
	return remainder == int(digits[10]-'0')
}

func extractDigits(s string) []byte {
	var out []byte
	for _, r := range s {
		if r >= '0' && r <= '9' {
			out = append(out, byte(r))
		}
	}
	return out
}

// allSameDigit informa se todos os dígitos são iguais ("111.111.111-11" passa
// no módulo 11 mas é um documento fictício).
func allSameDigit(digits []byte) bool {
	if len(digits) == 0 {
		return true
	}
	return strings.Count(string(digits), string(digits[0])) == len(digits)
}
