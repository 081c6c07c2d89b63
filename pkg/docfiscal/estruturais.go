package docfiscal

import "regexp"

// CEI e CAEPF não têm dígito verificador público documentado; a validação é
// estrutural, sobre a forma canônica mascarada.
var (
	ceiPattern   = regexp.MustCompile(`^\d{2}\.\d{3}\.\d{5}/\d{2}$`)
	caepfPattern = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{3}$`)
)

// ValidCEI valida a forma XX.XXX.XXXXX/XX do Cadastro Específico do INSS.
func ValidCEI(cei string) bool {
	return ceiPattern.MatchString(cei)
}

// ValidCAEPF valida a forma XXX.XXX.XXX-XXX do Cadastro de Atividade
// Econômica da Pessoa Física.
func ValidCAEPF(caepf string) bool {
	return caepfPattern.MatchString(caepf)
}
