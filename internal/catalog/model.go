package catalog

import "github.com/shopspring/decimal"

// Topping is a selectable pizza ingredient.
// Immutable once the catalog is loaded.
type Topping struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image"`
}

// Class is the tag carried by every decorative piece of this topping.
func (t Topping) Class() string {
	return "topping-" + t.ID
}

// Label is the checkbox caption, e.g. "Pepperoni (+₹80)".
func (t Topping) Label() string {
	return t.Name + " (+" + Currency + t.Price.String() + ")"
}

// raw* types mirror catalog.yaml; prices stay strings until decimal parsing
type rawCatalog struct {
	Base     rawBase      `yaml:"base"`
	Toppings []rawTopping `yaml:"toppings"`
}

type rawBase struct {
	Name  string `yaml:"name"`
	Price string `yaml:"price"`
}

type rawTopping struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Price string `yaml:"price"`
	Image string `yaml:"image"`
}
