// Package page maps a URL fragment or path segment to the single top-level
// page section that should be visible.
package page

import "strings"

type Page string

const (
	Builder      Page = "builder"
	Checkout     Page = "checkout"
	Confirmation Page = "confirmation"
)

// Default is shown when no fragment is present.
const Default = Builder

var known = map[Page]bool{
	Builder:      true,
	Checkout:     true,
	Confirmation: true,
}

// All lists the pages in navigation order.
func All() []Page {
	return []Page{Builder, Checkout, Confirmation}
}

// Resolve accepts "#checkout", "checkout" or "/checkout". An empty fragment
// selects Default; an unknown one reports false.
func Resolve(fragment string) (Page, bool) {
	f := strings.TrimPrefix(strings.TrimSpace(fragment), "/")
	f = strings.TrimPrefix(f, "#")
	if f == "" {
		return Default, true
	}

	p := Page(strings.ToLower(f))
	if !known[p] {
		return "", false
	}
	return p, true
}

// Fragment is the hash form, e.g. "#confirmation".
func (p Page) Fragment() string {
	return "#" + string(p)
}

// Path is where the page is served.
func (p Page) Path() string {
	if p == Default {
		return "/"
	}
	return "/" + string(p)
}
