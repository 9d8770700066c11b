package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository keeps snapshots in order_sessions.state (jsonb).
// Snapshots never contain card data; see checkout.IsPaymentField.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*Order, error) {
	var state []byte
	err := r.db.QueryRow(ctx, `
		SELECT state
		FROM order_sessions
		WHERE id = $1
	`, id).Scan(&state)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load order session: %w", err)
	}

	var o Order
	if err := json.Unmarshal(state, &o); err != nil {
		return nil, fmt.Errorf("decode order session: %w", err)
	}
	return &o, nil
}

func (r *PostgresRepository) Save(ctx context.Context, o *Order) error {
	state, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("encode order session: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO order_sessions (id, state, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id)
		DO UPDATE SET
			state = EXCLUDED.state,
			updated_at = EXCLUDED.updated_at
	`, o.ID, state, o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save order session: %w", err)
	}
	return nil
}

func (r *PostgresRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM order_sessions
		WHERE updated_at < $1
	`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete expired order sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}
