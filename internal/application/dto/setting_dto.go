package dto

import "time"

// UpsertSettingRequest entrada para criar/atualizar uma configuração de custo.
type UpsertSettingRequest struct {
	Type        string `json:"type" validate:"required,oneof=number percent boolean json"`
	Value       string `json:"value" validate:"required"`
	Description string `json:"description"`
}

// SettingResponse saída de uma configuração.
type SettingResponse struct {
	Key         string    `json:"key"`
	Type        string    `json:"type"`
	Value       string    `json:"value"`
	Description string    `json:"description,omitempty"`
	UpdatedBy   string    `json:"updated_by,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SettingListResponse todas as configurações.
type SettingListResponse struct {
	Items []SettingResponse `json:"items"`
}
