package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee é um funcionário ativo com salário base e encargos configuráveis.
// Cada percentual só é aplicado quando o respectivo toggle está habilitado.
type Employee struct {
	ID       string
	Name     string
	Sector   string
	Position string
	Active   bool

	BaseSalary decimal.Decimal

	FGTSEnabled          bool
	FGTSPercent          decimal.Decimal // tipicamente 8
	INSSEnabled          bool
	INSSPercent          decimal.Decimal // INSS patronal, tipicamente 20
	VacationEnabled      bool
	VacationPercent      decimal.Decimal // provisão de férias
	VacationBonusEnabled bool
	VacationBonusPercent decimal.Decimal // 1/3 de férias
	ThirteenthEnabled    bool
	ThirteenthPercent    decimal.Decimal // 13º salário
	RATEnabled           bool
	RATPercent           decimal.Decimal
	OtherCostsEnabled    bool
	OtherCostsValue      decimal.Decimal // valor fixo mensal, não percentual

	CreatedAt time.Time
	UpdatedAt time.Time
}

var chargeHundred = decimal.NewFromInt(100)

// LoadedCost devolve o custo mensal totalmente carregado do funcionário:
// salário base + (base × percentual/100) de cada encargo habilitado +
// outros custos fixos quando habilitados.
func (e *Employee) LoadedCost() decimal.Decimal {
	cost := e.BaseSalary
	apply := func(enabled bool, percent decimal.Decimal) {
		if enabled {
			cost = cost.Add(e.BaseSalary.Mul(percent).Div(chargeHundred))
		}
	}
	apply(e.FGTSEnabled, e.FGTSPercent)
	apply(e.INSSEnabled, e.INSSPercent)
	apply(e.VacationEnabled, e.VacationPercent)
	apply(e.VacationBonusEnabled, e.VacationBonusPercent)
	apply(e.ThirteenthEnabled, e.ThirteenthPercent)
	apply(e.RATEnabled, e.RATPercent)
	if e.OtherCostsEnabled {
		cost = cost.Add(e.OtherCostsValue)
	}
	return cost
}
