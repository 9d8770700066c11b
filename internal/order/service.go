package order

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"time"

	"pizzeria/internal/catalog"
	"pizzeria/internal/checkout"
	"pizzeria/internal/page"
	"pizzeria/internal/pizza"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service is the only way an Order changes. Every operation loads the
// snapshot, mutates it and saves it while holding that session's lock, so each
// request sees the settled result of the one before it.
type Service struct {
	locks   *sessionLocks
	repo    Repository
	catalog *catalog.Catalog
	rng     pizza.Rand
	now     func() time.Time
	newRef  func() string
	logger  *zap.Logger
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithRand fixes the source used to scatter topping pieces.
func WithRand(r pizza.Rand) Option {
	return func(s *Service) { s.rng = r }
}

func WithReferences(next func() string) Option {
	return func(s *Service) { s.newRef = next }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.logger = l }
}

var errMissingSession = errors.New("missing session id")

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

func newReference() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10])
}

func NewService(repo Repository, cat *catalog.Catalog, opts ...Option) *Service {
	s := &Service{
		locks:   newSessionLocks(),
		repo:    repo,
		catalog: cat,
		rng:     globalRand{},
		now:     time.Now,
		newRef:  newReference,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// View renders the session's order for page p without changing it.
func (s *Service) View(ctx context.Context, sessionID string, p page.Page) (*View, error) {
	if sessionID == "" {
		return nil, errMissingSession
	}
	defer s.locks.lock(sessionID)()

	o, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return buildView(s.catalog, o, p), nil
}

// SetTopping applies a checkbox transition. Checking scatters fresh pieces,
// unchecking removes every piece of that topping. Setting a topping to the
// state it already has changes nothing.
func (s *Service) SetTopping(ctx context.Context, sessionID, toppingID string, checked bool) (*View, error) {
	if _, err := s.catalog.Lookup(toppingID); err != nil {
		return nil, err
	}

	return s.mutate(ctx, sessionID, page.Builder, func(o *Order) (page.Page, error) {
		if o.Selected[toppingID] == checked {
			return page.Builder, nil
		}

		if checked {
			o.Selected[toppingID] = true
			o.Surface.Add(toppingID, s.rng)
		} else {
			delete(o.Selected, toppingID)
			o.Surface.Remove(toppingID)
		}
		return page.Builder, nil
	})
}

// Next validates the current checkout step and advances when it passes.
func (s *Service) Next(ctx context.Context, sessionID string, form checkout.Form) (*View, bool, error) {
	var advanced bool
	v, err := s.mutate(ctx, sessionID, page.Checkout, func(o *Order) (page.Page, error) {
		advanced = o.Wizard.Next(form, s.now())
		return page.Checkout, nil
	})
	return v, advanced, err
}

// Prev steps back without validating. Non-payment inputs in form are kept.
func (s *Service) Prev(ctx context.Context, sessionID string, form checkout.Form) (*View, error) {
	return s.mutate(ctx, sessionID, page.Checkout, func(o *Order) (page.Page, error) {
		o.Wizard.Prev(form)
		return page.Checkout, nil
	})
}

// Submit re-validates the final step. On success the confirmation replaces
// any earlier one and the view routes to the confirmation page. On failure
// nothing is captured and the checkout page keeps showing the errors.
func (s *Service) Submit(ctx context.Context, sessionID string, form checkout.Form) (*View, bool, error) {
	var confirmed bool
	v, err := s.mutate(ctx, sessionID, page.Checkout, func(o *Order) (page.Page, error) {
		now := s.now()
		valid, err := o.Wizard.Submit(form, now)
		if err != nil {
			return page.Checkout, err
		}
		if !valid {
			return page.Checkout, nil
		}

		name := strings.TrimSpace(o.Wizard.Fields[checkout.FieldName])
		o.Confirmation = newConfirmation(s.newRef(), name, pizza.Summarize(s.catalog, o.Selected), now)
		confirmed = true

		s.logger.Info("order confirmed",
			zap.String("session", o.ID),
			zap.String("reference", o.Confirmation.Reference),
			zap.String("total", o.Confirmation.Total.StringFixed(2)),
			zap.Int("toppings", len(o.Selected)),
		)
		return page.Confirmation, nil
	})
	return v, confirmed, err
}

// Reset brings the order back to a fresh page load: no pieces, nothing
// checked, base price only, empty form, first step.
func (s *Service) Reset(ctx context.Context, sessionID string) (*View, error) {
	return s.mutate(ctx, sessionID, page.Builder, func(o *Order) (page.Page, error) {
		o.reset()
		return page.Builder, nil
	})
}

func (s *Service) mutate(
	ctx context.Context,
	sessionID string,
	fallback page.Page,
	fn func(o *Order) (page.Page, error),
) (*View, error) {
	if sessionID == "" {
		return nil, errMissingSession
	}
	defer s.locks.lock(sessionID)()

	o, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	p, err := fn(o)
	if err != nil {
		return nil, err
	}
	if p == "" {
		p = fallback
	}

	o.UpdatedAt = s.now()
	if err := s.repo.Save(ctx, o); err != nil {
		s.logger.Error("save order failed", zap.String("session", sessionID), zap.Error(err))
		return nil, err
	}

	return buildView(s.catalog, o, p), nil
}

func (s *Service) load(ctx context.Context, sessionID string) (*Order, error) {
	o, err := s.repo.Get(ctx, sessionID)
	if errors.Is(err, ErrSessionNotFound) {
		return New(sessionID), nil
	}
	if err != nil {
		return nil, err
	}

	if o.Selected == nil {
		o.Selected = map[string]bool{}
	}
	return o, nil
}

// Sweep deletes every session not saved within ttl. The session cookie lives
// for the same ttl from issue, so a swept session can no longer be presented.
func (s *Service) Sweep(ctx context.Context, ttl time.Duration) (int64, error) {
	n, err := s.repo.DeleteBefore(ctx, s.now().Add(-ttl))
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.logger.Info("expired order sessions deleted", zap.Int64("count", n))
	}
	return n, nil
}

// RunSweeper sweeps every interval until ctx is done. A failed sweep is
// logged and retried on the next tick.
func (s *Service) RunSweeper(ctx context.Context, ttl, interval time.Duration) error {
	if interval <= 0 {
		return errors.New("sweep interval must be positive")
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := s.Sweep(ctx, ttl); err != nil && ctx.Err() == nil {
				s.logger.Error("sweep order sessions failed", zap.Error(err))
			}
		}
	}
}
