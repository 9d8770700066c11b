package catalog

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Base Pizza", c.BaseName())
	assert.True(t, c.BasePrice().Equal(decimal.NewFromInt(150)))

	toppings := c.Toppings()
	require.Len(t, toppings, 4)

	want := []struct {
		id    string
		price int64
	}{
		{"pepperoni", 80},
		{"mushrooms", 50},
		{"onions", 40},
		{"olives", 60},
	}
	for i, w := range want {
		assert.Equal(t, w.id, toppings[i].ID)
		assert.True(t, toppings[i].Price.Equal(decimal.NewFromInt(w.price)), w.id)
	}
}

func TestLookupUnknownTopping(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	_, err = c.Lookup("pineapple")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownTopping))
	assert.False(t, c.Has("pineapple"))
}

func TestToppingsReturnsCopy(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	ts := c.Toppings()
	ts[0].Name = "changed"

	got, err := c.Lookup("pepperoni")
	require.NoError(t, err)
	assert.Equal(t, "Pepperoni", got.Name)
}

func TestParseRejectsBadDocuments(t *testing.T) {
	cases := map[string]string{
		"no toppings": "base: {name: Base, price: \"1\"}\ntoppings: []\n",
		"bad price":   "base: {name: Base, price: \"x\"}\ntoppings:\n  - {id: a, name: A, price: \"1\"}\n",
		"negative":    "base: {name: Base, price: \"1\"}\ntoppings:\n  - {id: a, name: A, price: \"-1\"}\n",
		"duplicate":   "base: {name: Base, price: \"1\"}\ntoppings:\n  - {id: a, name: A, price: \"1\"}\n  - {id: a, name: B, price: \"2\"}\n",
		"missing id":  "base: {name: Base, price: \"1\"}\ntoppings:\n  - {name: A, price: \"1\"}\n",
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestWithImageBase(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	remote := c.WithImageBase("https://cdn.example.com/")
	tp, err := remote.Lookup("olives")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/images/olives.svg", tp.Image)

	local, err := c.Lookup("olives")
	require.NoError(t, err)
	assert.Equal(t, "images/olives.svg", local.Image)

	assert.Same(t, c, c.WithImageBase(""))
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "₹150.00", FormatPrice(decimal.NewFromInt(150)))
	assert.Equal(t, "+₹80.00", FormatAddOn(decimal.NewFromInt(80)))

	tp := Topping{ID: "onions", Name: "Onions", Price: decimal.NewFromInt(40)}
	assert.Equal(t, "Onions (+₹40)", tp.Label())
	assert.Equal(t, "topping-onions", tp.Class())
}
