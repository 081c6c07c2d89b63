package docfiscal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/credenciamento-api/pkg/docfiscal"
)

// ──────────────────────────────────────────────────────────────────────────────
// Máscaras: digitação progressiva, idempotência e comprimento máximo.
// ──────────────────────────────────────────────────────────────────────────────

func TestMaskCEP(t *testing.T) {
	assert.Equal(t, "12345-678", docfiscal.MaskCEP("12345678"))
	assert.Equal(t, "12345-678", docfiscal.MaskCEP("12345-678"))
	assert.Equal(t, "1234", docfiscal.MaskCEP("1234"), "prefixo curto fica sem separador")
	assert.Equal(t, "12345-6", docfiscal.MaskCEP("123456"), "separador aparece assim que há dígito após o grupo")
}

func TestMaskCNPJ(t *testing.T) {
	assert.Equal(t, "11.222.333/0001-81", docfiscal.MaskCNPJ("11222333000181"))
	assert.Equal(t, "11.222.333/0001-81", docfiscal.MaskCNPJ("11.222.333/0001-81"))
	assert.Equal(t, "11.222.3", docfiscal.MaskCNPJ("112223"), "máscara parcial é consistente com o prefixo")
}

func TestMaskCPF(t *testing.T) {
	assert.Equal(t, "529.982.247-25", docfiscal.MaskCPF("52998224725"))
	assert.Equal(t, "529.982.247-25", docfiscal.MaskCPF("529.982.247-25"))
	assert.Equal(t, "529.98", docfiscal.MaskCPF("52998"))
}

func TestMaskCEI(t *testing.T) {
	assert.Equal(t, "12.345.67891/23", docfiscal.MaskCEI("123456789123"))
	assert.Equal(t, "12.345.67891/23", docfiscal.MaskCEI("12.345.67891/23"))
}

func TestMaskCAEPF(t *testing.T) {
	assert.Equal(t, "123.456.789-012", docfiscal.MaskCAEPF("123456789012"))
	assert.Equal(t, "123.456.789-012", docfiscal.MaskCAEPF("123.456.789-012"))
}

func TestMaskTelefone_OitoENoveDigitosLocais(t *testing.T) {
	// Fixo (8 dígitos locais): grupo de 4 antes do hífen.
	assert.Equal(t, "(11) 3333-4444", docfiscal.MaskTelefone("1133334444"))
	// Celular (9 dígitos locais): grupo de 5 antes do hífen.
	assert.Equal(t, "(11) 98765-4321", docfiscal.MaskTelefone("11987654321"))
	// DDD incompleto não ganha parênteses.
	assert.Equal(t, "11", docfiscal.MaskTelefone("11"))
}

func TestMascaras_Idempotencia(t *testing.T) {
	masks := map[string]func(string) string{
		"cep":      docfiscal.MaskCEP,
		"cnpj":     docfiscal.MaskCNPJ,
		"cpf":      docfiscal.MaskCPF,
		"cei":      docfiscal.MaskCEI,
		"caepf":    docfiscal.MaskCAEPF,
		"telefone": docfiscal.MaskTelefone,
	}
	inputs := []string{
		"", "1", "12", "123", "12345", "12345678", "52998224725",
		"11222333000181", "123456789123", "123456789012", "11987654321",
		"999999999999999999", "abc123def456ghi789", "(11) 98765-4321",
		"529.982.247-25", "11.222.333/0001-81",
	}
	for name, mask := range masks {
		for _, in := range inputs {
			once := mask(in)
			assert.Equal(t, once, mask(once), "%s deve ser idempotente para %q", name, in)
		}
	}
}

func TestMascaras_ComprimentoMaximo(t *testing.T) {
	// Entrada com dígitos de sobra nunca ultrapassa o comprimento canônico.
	longo := "98765432109876543210987654321"
	assert.LessOrEqual(t, len(docfiscal.MaskCEP(longo)), 9)
	assert.LessOrEqual(t, len(docfiscal.MaskCNPJ(longo)), 18)
	assert.LessOrEqual(t, len(docfiscal.MaskCPF(longo)), 14)
	assert.LessOrEqual(t, len(docfiscal.MaskCEI(longo)), 15)
	assert.LessOrEqual(t, len(docfiscal.MaskCAEPF(longo)), 15)
	assert.LessOrEqual(t, len(docfiscal.MaskTelefone(longo)), 15)
}

// A máscara deve produzir exatamente a forma que o validador estrutural aceita.
func TestMascaras_CoerenciaComValidadores(t *testing.T) {
	assert.True(t, docfiscal.ValidCEI(docfiscal.MaskCEI("123456789123")))
	assert.True(t, docfiscal.ValidCAEPF(docfiscal.MaskCAEPF("123456789012")))
	assert.True(t, docfiscal.ValidCPF(docfiscal.MaskCPF("52998224725")))
	assert.True(t, docfiscal.ValidCNPJ(docfiscal.MaskCNPJ("11222333000181")))
}
