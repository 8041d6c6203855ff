package entity

import "time"

// Papéis de acesso da aplicação.
const (
	RoleAdmin      = "admin"
	RoleProducao   = "producao"
	RoleFinanceiro = "financeiro"
)

// User é um usuário autenticável da API (atribuição de auditoria nos
// registros de custo via CreatedBy).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin | producao | financeiro
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
