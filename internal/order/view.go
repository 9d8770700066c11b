package order

import (
	"pizzeria/internal/catalog"
	"pizzeria/internal/checkout"
	"pizzeria/internal/page"
	"pizzeria/internal/pizza"
)

// ToppingView is a topping checkbox.
type ToppingView struct {
	catalog.Topping
	Checked bool `json:"checked"`
}

// Piece is a placement resolved against the catalog for drawing.
type Piece struct {
	pizza.Placement
	Image string `json:"image"`
	Alt   string `json:"alt"`
}

// View is the fully rendered state handed to templates and JSON clients.
type View struct {
	OrderID      string              `json:"order_id"`
	Page         page.Page           `json:"page"`
	Route        string              `json:"route"`
	Toppings     []ToppingView       `json:"toppings"`
	Pieces       []Piece             `json:"pieces"`
	Summary      pizza.Summary       `json:"summary"`
	Step         int                 `json:"step"`
	Steps        []checkout.StepView `json:"steps"`
	Fields       checkout.Form       `json:"fields"`
	Errors       checkout.Errors     `json:"errors"`
	Confirmation *Confirmation       `json:"confirmation,omitempty"`
}

// Visible reports whether the named page section is the one shown.
func (v *View) Visible(name string) bool {
	return string(v.Page) == name
}

func buildView(c *catalog.Catalog, o *Order, p page.Page) *View {
	v := &View{
		OrderID:      o.ID,
		Page:         p,
		Route:        p.Fragment(),
		Summary:      pizza.Summarize(c, o.Selected),
		Step:         o.Wizard.Step,
		Steps:        o.Wizard.Steps(),
		Fields:       checkout.Form{},
		Errors:       checkout.Errors{},
		Confirmation: o.Confirmation,
	}

	for _, t := range c.Toppings() {
		v.Toppings = append(v.Toppings, ToppingView{Topping: t, Checked: o.Selected[t.ID]})
	}

	for _, pl := range o.Surface.Placements {
		t, err := c.Lookup(pl.Topping)
		if err != nil {
			continue
		}
		v.Pieces = append(v.Pieces, Piece{Placement: pl, Image: t.Image, Alt: t.Name})
	}

	for k, val := range o.Wizard.Fields {
		v.Fields[k] = val
	}
	for k, msg := range o.Wizard.Errors {
		v.Errors[k] = msg
	}

	return v
}
