package usecase

import "github.com/jhoicas/credenciamento-api/internal/domain/entity"

// Actor identifica quem executa a operação, extraído do token pelo handler.
// O escopo de visão e a atribuição de credenciadora derivam daqui, nunca de
// contexto ambiente.
type Actor struct {
	UserID string
	Role   string
}

// Admin informa se o ator tem visão irrestrita.
func (a Actor) Admin() bool {
	return a.Role == entity.RoleAdmin
}
