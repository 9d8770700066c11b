package order

import (
	"time"

	"pizzeria/internal/checkout"
	"pizzeria/internal/pizza"

	"github.com/shopspring/decimal"
)

// Order is one visitor's page state: which toppings are checked, the pizza
// surface, the checkout wizard and, once submitted, the confirmation.
// It is only mutated through Service and is deleted once the session expires.
type Order struct {
	ID           string          `json:"id"`
	Selected     map[string]bool `json:"selected"`
	Surface      pizza.Surface   `json:"surface"`
	Wizard       checkout.Wizard `json:"wizard"`
	Confirmation *Confirmation   `json:"confirmation,omitempty"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// Confirmation is rendered straight from the structured summary taken at
// submission time.
type Confirmation struct {
	Reference    string          `json:"reference"`
	CustomerName string          `json:"customer_name"`
	Lines        []pizza.Line    `json:"lines"`
	Total        decimal.Decimal `json:"total"`
	TotalDisplay string          `json:"total_display"`
	PlacedAt     time.Time       `json:"placed_at"`
}

func New(id string) *Order {
	return &Order{
		ID:       id,
		Selected: map[string]bool{},
		Wizard:   checkout.NewWizard(),
	}
}

// reset returns the order to the state of a fresh page load.
func (o *Order) reset() {
	*o = *New(o.ID)
}

func newConfirmation(ref, customerName string, s pizza.Summary, at time.Time) *Confirmation {
	lines := make([]pizza.Line, len(s.Lines))
	copy(lines, s.Lines)

	return &Confirmation{
		Reference:    ref,
		CustomerName: customerName,
		Lines:        lines,
		Total:        s.Total,
		TotalDisplay: s.TotalDisplay,
		PlacedAt:     at,
	}
}
