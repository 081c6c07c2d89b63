package entity

// Segmento ramo de atuação de um credenciado (saúde, educação etc.).
type Segmento struct {
	ID   string
	Nome string
}
