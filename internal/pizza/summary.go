package pizza

import (
	"pizzeria/internal/catalog"

	"github.com/shopspring/decimal"
)

// Line is one row of the order summary.
type Line struct {
	ToppingID string          `json:"topping_id,omitempty"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Display   string          `json:"display"`
}

// Summary is the order summary list plus its total.
type Summary struct {
	Lines        []Line          `json:"lines"`
	Total        decimal.Decimal `json:"total"`
	TotalDisplay string          `json:"total_display"`
}

// Summarize rebuilds the summary from scratch: the base line first, then one
// line per selected topping in catalog order. The total is always base plus
// the sum of the selected toppings, so repeated calls on the same selection
// give identical output.
func Summarize(c *catalog.Catalog, selected map[string]bool) Summary {
	base := c.BasePrice()
	s := Summary{
		Lines: []Line{{
			Name:    c.BaseName(),
			Price:   base,
			Display: catalog.FormatPrice(base),
		}},
		Total: base,
	}

	for _, t := range c.Toppings() {
		if !selected[t.ID] {
			continue
		}
		s.Lines = append(s.Lines, Line{
			ToppingID: t.ID,
			Name:      t.Name,
			Price:     t.Price,
			Display:   catalog.FormatAddOn(t.Price),
		})
		s.Total = s.Total.Add(t.Price)
	}

	s.TotalDisplay = catalog.FormatPrice(s.Total)
	return s
}
