package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		in   string
		want Page
		ok   bool
	}{
		{"", Builder, true},
		{"#", Builder, true},
		{"/", Builder, true},
		{"#builder", Builder, true},
		{"checkout", Checkout, true},
		{"/confirmation", Confirmation, true},
		{"#Checkout", Checkout, true},
		{"#menu", "", false},
	}

	for _, c := range cases {
		got, ok := Resolve(c.in)
		assert.Equal(t, c.ok, ok, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

func TestPathAndFragment(t *testing.T) {
	assert.Equal(t, "/", Builder.Path())
	assert.Equal(t, "/checkout", Checkout.Path())
	assert.Equal(t, "#confirmation", Confirmation.Fragment())
	assert.Len(t, All(), 3)
}
