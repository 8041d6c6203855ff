package entity

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de valor de uma configuração de custo.
const (
	SettingTypeNumber  = "number"
	SettingTypePercent = "percent"
	SettingTypeBoolean = "boolean"
	SettingTypeJSON    = "json"
)

// Chaves conhecidas.
const (
	SettingKeyAlertThreshold = "cost_alert_threshold_percent"
)

// CostSetting é uma entrada tipada do store chave-valor de configuração do
// motor de custos (ex.: threshold do alerta de variação).
type CostSetting struct {
	Key         string
	Type        string // number | percent | boolean | json
	Value       string // representação textual; interpretada conforme Type
	Description string
	UpdatedBy   string
	UpdatedAt   time.Time
}

// ValidSettingType informa se t é um tipo conhecido.
func ValidSettingType(t string) bool {
	switch t {
	case SettingTypeNumber, SettingTypePercent, SettingTypeBoolean, SettingTypeJSON:
		return true
	}
	return false
}

// DecimalValue interpreta Value como decimal (tipos number/percent).
// Devolve ok=false se o valor não for numérico.
func (s *CostSetting) DecimalValue() (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(s.Value)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// BoolValue interpreta Value como booleano (tipo boolean).
func (s *CostSetting) BoolValue() (bool, bool) {
	b, err := strconv.ParseBool(s.Value)
	if err != nil {
		return false, false
	}
	return b, true
}
