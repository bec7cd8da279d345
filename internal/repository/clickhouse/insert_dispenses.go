package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/ledger-faucet/internal/model"
)

const insertDispensesQuery = `
INSERT INTO faucet_dispenses (
	request_id,
	recipient,
	amount,
	deploy_id,
	node_host,
	client_ip,
	created_at
) VALUES`

// InsertDispenses stores dispense rows in ClickHouse.
func (r *Repository) InsertDispenses(ctx context.Context, dispenses []model.Dispense) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_dispenses", err, start)
	}()

	if len(dispenses) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertDispensesQuery)
	if err != nil {
		return fmt.Errorf("prepare dispenses batch: %w", err)
	}

	for _, d := range dispenses {
		if err = batch.Append(
			d.RequestID,
			d.Recipient,
			d.Amount,
			string(d.DeployID),
			d.NodeHost,
			d.ClientIP,
			d.CreatedAt,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append dispense: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert dispenses: %w", err)
	}
	return nil
}
