package docfiscal_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/credenciamento-api/pkg/docfiscal"
)

// ──────────────────────────────────────────────────────────────────────────────
// ValidCNPJ: dois dígitos verificadores com pesos cíclicos 5,4,3,2,9,8,7,6,5,4,3,2.
//
// Vetor de referência: 11.222.333/0001-81.
//   Base 112223330001 → soma 102, 102%11 = 3 → 1º DV = 11-3 = 8
//   Base 1122233300018 → soma 120, 120%11 = 10 → 2º DV = 11-10 = 1
// ──────────────────────────────────────────────────────────────────────────────

func TestValidCNPJ_VetorValido(t *testing.T) {
	assert.True(t, docfiscal.ValidCNPJ("11.222.333/0001-81"), "CNPJ de referência com máscara")
	assert.True(t, docfiscal.ValidCNPJ("11222333000181"), "CNPJ de referência sem máscara")
}

func TestValidCNPJ_DigitoMutadoInvalida(t *testing.T) {
	const valido = "11222333000181"
	for i := 0; i < len(valido); i++ {
		mutado := []byte(valido)
		mutado[i] = '0' + byte((int(mutado[i]-'0')+1)%10)
		assert.False(t, docfiscal.ValidCNPJ(string(mutado)),
			"mutação na posição %d deve invalidar o CNPJ", i)
	}
}

func TestValidCNPJ_DigitosIdenticos(t *testing.T) {
	for d := byte('0'); d <= '9'; d++ {
		cnpj := strings.Repeat(string(d), 14)
		assert.False(t, docfiscal.ValidCNPJ(cnpj), "%s deve ser rejeitado", cnpj)
	}
}

func TestValidCNPJ_TamanhoErrado(t *testing.T) {
	assert.False(t, docfiscal.ValidCNPJ(""))
	assert.False(t, docfiscal.ValidCNPJ("1122233300018"), "13 dígitos")
	assert.False(t, docfiscal.ValidCNPJ("112223330001811"), "15 dígitos")
	assert.False(t, docfiscal.ValidCNPJ("não numérico"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Validadores estruturais: CEI e CAEPF não têm checksum, apenas forma fixa.
// ──────────────────────────────────────────────────────────────────────────────

func TestValidCEI_Formas(t *testing.T) {
	assert.True(t, docfiscal.ValidCEI("12.345.67891/23"))
	assert.False(t, docfiscal.ValidCEI("123456789123"), "sem máscara não é canônico")
	assert.False(t, docfiscal.ValidCEI("12.345.67891-23"), "separador errado")
	assert.False(t, docfiscal.ValidCEI(""))
}

func TestValidCAEPF_Formas(t *testing.T) {
	assert.True(t, docfiscal.ValidCAEPF("123.456.789-012"))
	assert.False(t, docfiscal.ValidCAEPF("123456789012"), "sem máscara não é canônico")
	assert.False(t, docfiscal.ValidCAEPF("123.456.789/012"), "separador errado")
	assert.False(t, docfiscal.ValidCAEPF(""))
}
