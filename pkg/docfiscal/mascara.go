package docfiscal

import "regexp"

// As máscaras reproduzem a digitação progressiva do painel: remove-se tudo que
// não é dígito, limita-se à quantidade máxima de dígitos do esquema e
// reinserem-se os separadores por substituição ordenada (primeira ocorrência).
// O corte por quantidade de dígitos, e não por comprimento do texto, garante
// idempotência: Mask(Mask(x)) == Mask(x) para qualquer entrada.

var (
	reCEPGrupo = regexp.MustCompile(`(\d{5})(\d)`)

	reDois     = regexp.MustCompile(`(\d{2})(\d)`)
	reTres     = regexp.MustCompile(`(\d{3})(\d)`)
	reCNPJFim  = regexp.MustCompile(`(\d{4})(\d{2})$`)
	reCPFFim   = regexp.MustCompile(`(\d{3})(\d{2})$`)
	reCEIFim   = regexp.MustCompile(`(\d{5})(\d{2})$`)
	reCAEPFFim = regexp.MustCompile(`(\d{3})(\d{3})$`)
	reTelLocal = regexp.MustCompile(`(\d{4,5})(\d{4})$`)
)

// replaceFirst aplica a substituição apenas na primeira ocorrência, como o
// String.prototype.replace sem flag global.
func replaceFirst(re *regexp.Regexp, s, repl string) string {
	loc := re.FindStringSubmatchIndex(s)
	if loc == nil {
		return s
	}
	out := []byte(s[:loc[0]])
	out = re.ExpandString(out, repl, s, loc)
	out = append(out, s[loc[1]:]...)
	return string(out)
}

func capDigits(s string, max int) string {
	d := extractDigits(s)
	if len(d) > max {
		d = d[:max]
	}
	return string(d)
}

// MaskCEP formata o CEP como XXXXX-XXX (máx. 9 caracteres).
func MaskCEP(value string) string {
	s := capDigits(value, 8)
	return replaceFirst(reCEPGrupo, s, "$1-$2")
}

// MaskCNPJ formata o CNPJ como XX.XXX.XXX/XXXX-XX (máx. 18 caracteres).
func MaskCNPJ(value string) string {
	s := capDigits(value, 14)
	s = replaceFirst(reDois, s, "$1.$2")
	s = replaceFirst(reTres, s, "$1.$2")
	s = replaceFirst(reTres, s, "$1/$2")
	return replaceFirst(reCNPJFim, s, "$1-$2")
}

// MaskCPF formata o CPF como XXX.XXX.XXX-XX (máx. 14 caracteres).
func MaskCPF(value string) string {
	s := capDigits(value, 11)
	s = replaceFirst(reTres, s, "$1.$2")
	s = replaceFirst(reTres, s, "$1.$2")
	return replaceFirst(reCPFFim, s, "$1-$2")
}

// MaskCEI formata o CEI como XX.XXX.XXXXX/XX (máx. 15 caracteres).
func MaskCEI(value string) string {
	s := capDigits(value, 12)
	s = replaceFirst(reDois, s, "$1.$2")
	s = replaceFirst(reTres, s, "$1.$2")
	return replaceFirst(reCEIFim, s, "$1/$2")
}

// MaskCAEPF formata o CAEPF como XXX.XXX.XXX-XXX (máx. 15 caracteres).
func MaskCAEPF(value string) string {
	s := capDigits(value, 12)
	s = replaceFirst(reTres, s, "$1.$2")
	s = replaceFirst(reTres, s, "$1.$2")
	return replaceFirst(reCAEPFFim, s, "$1-$2")
}

// MaskTelefone formata o telefone como (XX) XXXX-XXXX ou (XX) XXXXX-XXXX
// conforme a quantidade de dígitos locais (máx. 15 caracteres).
func MaskTelefone(value string) string {
	s := capDigits(value, 11)
	s = replaceFirst(reDois, s, "($1) $2")
	return replaceFirst(reTelLocal, s, "$1-$2")
}
