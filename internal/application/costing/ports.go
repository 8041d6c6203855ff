package costing

import (
	"context"

	"github.com/agrococo/custos-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa tx. Garante que o par registro de custo + alerta
// de variação seja gravado de forma atômica: ou os dois entram, ou nenhum.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		recordRepo repository.CostRecordRepository,
		alertRepo repository.CostAlertRepository,
	) error) error
}
