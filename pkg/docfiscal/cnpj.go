package docfiscal

// cnpjCheckDigit calcula um dígito verificador do CNPJ sobre os n primeiros
// dígitos, com pesos cíclicos começando em n-7 e reiniciando em 9 quando
// cairiam abaixo de 2 (algoritmo módulo 11 da Receita Federal).
func cnpjCheckDigit(digits []byte, n int) int {
	sum := 0
	pos := n - 7
	for i := 0; i < n; i++ {
		sum += int(digits[i]-'0') * pos
		pos--
		if pos < 2 {
			pos = 9
		}
	}
	if rem := sum % 11; rem >= 2 {
		return 11 - rem
	}
	return 0
}

// ValidCNPJ valida o CNPJ (14 dígitos) pelos dois dígitos verificadores.
// Aceita "11.222.333/0001-81" ou "11222333000181". Sequências de dígitos
// idênticos são rejeitadas.
func ValidCNPJ(cnpj string) bool {
	digits := extractDigits(cnpj)
	if len(digits) != 14 || allSameDigit(digits) {
		return false
	}
	if cnpjCheckDigit(digits, 12) != int(digits[12]-'0') {
		return false
	}
	return cnpjCheckDigit(digits, 13) == int(digits[13]-'0')
}
