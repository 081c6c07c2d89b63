// Package validation monta o validador de entrada da API: tags customizadas
// para os documentos fiscais brasileiros e a regra cruzada do documento de
// credenciado (variante PJ/PF).
package validation

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/credenciamento-api/internal/application/dto"
	"github.com/jhoicas/credenciamento-api/pkg/docfiscal"
)

// New constrói o validador com todas as tags e regras de struct registradas.
// Os nomes de campo reportados vêm da tag json, para que o cliente receba
// o mesmo nome que enviou.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		return docfiscal.ValidCPF(fl.Field().String())
	})
	v.RegisterValidation("cnpj", func(fl validator.FieldLevel) bool {
		return docfiscal.ValidCNPJ(fl.Field().String())
	})
	v.RegisterValidation("cei", func(fl validator.FieldLevel) bool {
		return docfiscal.ValidCEI(docfiscal.MaskCEI(fl.Field().String()))
	})
	v.RegisterValidation("caepf", func(fl validator.FieldLevel) bool {
		return docfiscal.ValidCAEPF(docfiscal.MaskCAEPF(fl.Field().String()))
	})
	v.RegisterValidation("cnpjcaepf", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return docfiscal.ValidCNPJ(s) || docfiscal.ValidCAEPF(docfiscal.MaskCAEPF(s))
	})
	v.RegisterValidation("cep", func(fl validator.FieldLevel) bool {
		return len(soDigitos(fl.Field().String())) == 8
	})
	v.RegisterValidation("telefone", func(fl validator.FieldLevel) bool {
		n := len(soDigitos(fl.Field().String()))
		return n == 10 || n == 11
	})
	v.RegisterValidation("datanasc", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("02/01/2006", fl.Field().String())
		return err == nil
	})

	v.RegisterStructValidation(credenciadoStructLevel,
		dto.CreateCredenciadoRequest{}, dto.UpdateCredenciadoRequest{})

	return v
}

// credenciadoStructLevel aplica a regra da variante de documento: PJ carrega
// exatamente um CNPJ; PF carrega exatamente o campo individual declarado em
// documento_tipo. Violações são reportadas no seletor de tipo de documento;
// PJ sem razão social é reportado no próprio campo.
func credenciadoStructLevel(sl validator.StructLevel) {
	var (
		tipoPessoa, documentoTipo, razaoSocial string
		cnpj, cpf, cei, caepf                  string
	)
	switch r := sl.Current().Interface().(type) {
	case dto.CreateCredenciadoRequest:
		tipoPessoa, documentoTipo, razaoSocial = r.TipoPessoa, r.DocumentoTipo, r.RazaoSocial
		cnpj, cpf, cei, caepf = r.CNPJ, r.CPF, r.CEI, r.CAEPF
	case dto.UpdateCredenciadoRequest:
		tipoPessoa, documentoTipo, razaoSocial = r.TipoPessoa, r.DocumentoTipo, r.RazaoSocial
		cnpj, cpf, cei, caepf = r.CNPJ, r.CPF, r.CEI, r.CAEPF
	default:
		return
	}

	individuais := map[string]string{"CPF": cpf, "CEI": cei, "CAEPF": caepf}

	switch tipoPessoa {
	case "PJ":
		if documentoTipo != "CNPJ" || cnpj == "" || cpf != "" || cei != "" || caepf != "" {
			sl.ReportError(documentoTipo, "documento_tipo", "DocumentoTipo", "documento_pj", "")
		}
		if razaoSocial == "" {
			sl.ReportError(razaoSocial, "razao_social", "RazaoSocial", "required", "")
		}
	case "PF":
		declarado, ok := individuais[documentoTipo]
		if !ok || declarado == "" || cnpj != "" {
			sl.ReportError(documentoTipo, "documento_tipo", "DocumentoTipo", "documento_pf", "")
			return
		}
		for tipo, valor := range individuais {
			if tipo != documentoTipo && valor != "" {
				sl.ReportError(documentoTipo, "documento_tipo", "DocumentoTipo", "documento_pf", "")
				return
			}
		}
	}
}

func soDigitos(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
