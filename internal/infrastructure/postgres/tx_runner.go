package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	appcosting "github.com/agrococo/custos-api/internal/application/costing"
	"github.com/agrococo/custos-api/internal/domain/repository"
)

// Verificação em tempo de compilação do porto do motor de custos.
var _ appcosting.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
// O par gravação-de-registro + gravação-de-alerta do motor de custos precisa
// ser atômico: ou os dois entram, ou nenhum.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação, executa fn com repositórios atados à tx e faz
// Commit ou Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	recordRepo repository.CostRecordRepository,
	alertRepo repository.CostAlertRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	recordRepo := NewCostRecordRepository(tx)
	alertRepo := NewCostAlertRepository(tx)

	if err := fn(recordRepo, alertRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
