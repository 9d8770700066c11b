package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

var ErrUnknownTopping = errors.New("unknown topping")

// Catalog is the single source of truth for pricing.
// Topping order is the order checkboxes are shown in and the order
// summary lines are produced in.
type Catalog struct {
	baseName  string
	basePrice decimal.Decimal
	toppings  []Topping
	byID      map[string]int
}

// Default parses the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Parse builds a catalog from its YAML document.
func Parse(data []byte) (*Catalog, error) {
	var raw rawCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	basePrice, err := parsePrice(raw.Base.Price)
	if err != nil {
		return nil, fmt.Errorf("base price: %w", err)
	}
	baseName := strings.TrimSpace(raw.Base.Name)
	if baseName == "" {
		baseName = "Base Pizza"
	}

	if len(raw.Toppings) == 0 {
		return nil, errors.New("catalog has no toppings")
	}

	c := &Catalog{
		baseName:  baseName,
		basePrice: basePrice,
		toppings:  make([]Topping, 0, len(raw.Toppings)),
		byID:      make(map[string]int, len(raw.Toppings)),
	}

	for _, rt := range raw.Toppings {
		id := strings.TrimSpace(rt.ID)
		if id == "" {
			return nil, errors.New("topping id missing")
		}
		if _, dup := c.byID[id]; dup {
			return nil, fmt.Errorf("duplicate topping %q", id)
		}

		price, err := parsePrice(rt.Price)
		if err != nil {
			return nil, fmt.Errorf("topping %q: %w", id, err)
		}

		c.byID[id] = len(c.toppings)
		c.toppings = append(c.toppings, Topping{
			ID:    id,
			Name:  rt.Name,
			Price: price,
			Image: rt.Image,
		})
	}

	return c, nil
}

func parsePrice(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid price %q", s)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("negative price %q", s)
	}
	return d, nil
}

func (c *Catalog) BaseName() string { return c.baseName }

func (c *Catalog) BasePrice() decimal.Decimal { return c.basePrice }

// Toppings returns the toppings in display order.
func (c *Catalog) Toppings() []Topping {
	out := make([]Topping, len(c.toppings))
	copy(out, c.toppings)
	return out
}

func (c *Catalog) Lookup(id string) (Topping, error) {
	i, ok := c.byID[id]
	if !ok {
		return Topping{}, fmt.Errorf("%w: %q", ErrUnknownTopping, id)
	}
	return c.toppings[i], nil
}

func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// WithImageBase returns a copy whose image references are rooted at base,
// e.g. the public URL of the bucket the images were synced to.
func (c *Catalog) WithImageBase(base string) *Catalog {
	base = strings.TrimRight(base, "/")
	if base == "" {
		return c
	}

	out := &Catalog{
		baseName:  c.baseName,
		basePrice: c.basePrice,
		toppings:  c.Toppings(),
		byID:      c.byID,
	}
	for i := range out.toppings {
		out.toppings[i].Image = base + "/" + strings.TrimLeft(out.toppings[i].Image, "/")
	}
	return out
}
