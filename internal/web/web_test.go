package web

import (
	"io/fs"
	"testing"

	"pizzeria/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesParse(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)
	assert.NotNil(t, tmpl.Lookup("index.html"))
}

func TestStaticHasEveryToppingImage(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)

	static := Static()
	for _, tp := range c.Toppings() {
		_, err := fs.Stat(static, tp.Image)
		assert.NoError(t, err, tp.Image)
	}
}

func TestCardScriptFormatsLocally(t *testing.T) {
	src, err := fs.ReadFile(templateFS, "templates/index.html")
	require.NoError(t, err)

	page := string(src)
	assert.Contains(t, page, "function formatCardNumber(value)")
	assert.Contains(t, page, "addEventListener('input'")
	assert.NotContains(t, page, "fetch(", "typing must not wait on the server")
}
