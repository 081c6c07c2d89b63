package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/credenciamento-api/internal/application/dto"
)

var caser = cases.Title(language.BrazilianPortuguese)

// Map converte um erro do validador na lista de falhas por campo que a API
// devolve ao cliente. Erros que não são de validação viram uma falha única
// e genérica.
func Map(err error) []dto.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []dto.FieldError{{Field: "", Message: "entrada inválida"}}
	}
	out := make([]dto.FieldError, 0, len(verrs))
	for _, e := range verrs {
		out = append(out, dto.FieldError{
			Field:   e.Field(),
			Message: message(e),
		})
	}
	return out
}

func message(e validator.FieldError) string {
	nome := humanize(e.Field())
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s é obrigatório.", nome)
	case "email":
		return "Email inválido."
	case "min":
		return fmt.Sprintf("%s deve ter pelo menos %s caracteres.", nome, e.Param())
	case "max":
		return fmt.Sprintf("%s deve ter no máximo %s caracteres.", nome, e.Param())
	case "gt":
		return fmt.Sprintf("%s deve ser maior que %s.", nome, e.Param())
	case "oneof":
		return fmt.Sprintf("%s deve ser um de: %s.", nome, e.Param())
	case "numeric":
		return fmt.Sprintf("%s deve ser numérico.", nome)
	case "cpf":
		return "CPF inválido."
	case "cnpj":
		return "CNPJ inválido."
	case "cei":
		return "CEI inválido."
	case "caepf":
		return "CAEPF inválido."
	case "cnpjcaepf":
		return "CNPJ ou CAEPF inválido."
	case "cep":
		return "CEP deve ter 8 dígitos."
	case "telefone":
		return fmt.Sprintf("%s deve ter 10 ou 11 dígitos.", nome)
	case "datanasc":
		return "Data de nascimento deve estar no formato DD/MM/AAAA."
	case "documento_pj":
		return "Pessoa jurídica exige CNPJ e nenhum documento de pessoa física."
	case "documento_pf":
		return "Pessoa física exige exatamente o documento declarado no tipo."
	default:
		return fmt.Sprintf("%s inválido.", nome)
	}
}

// humanize transforma o nome json do campo em rótulo legível
// (contato_rh.nome vira "Contato Rh Nome").
func humanize(field string) string {
	field = strings.ReplaceAll(field, ".", " ")
	field = strings.ReplaceAll(field, "_", " ")
	return caser.String(field)
}
