package order

import (
	"context"
	"errors"
	"time"
)

var ErrSessionNotFound = errors.New("order session not found")

// Repository stores one Order snapshot per session.
// Service depends ONLY on this interface.
type Repository interface {
	Get(ctx context.Context, id string) (*Order, error)
	Save(ctx context.Context, o *Order) error

	// DeleteBefore drops every snapshot last saved before cutoff and
	// reports how many went.
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
