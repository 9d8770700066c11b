package order

import (
	"errors"
	"net/http"

	"pizzeria/internal/catalog"
	"pizzeria/internal/checkout"
	"pizzeria/internal/middleware"
	"pizzeria/internal/page"

	"github.com/gin-gonic/gin"
)

// PageTemplate is the shell every page section is rendered into.
const PageTemplate = "index.html"

// formFields reads every known checkout input present in the posted form.
func formFields(c *gin.Context) checkout.Form {
	form := checkout.Form{}
	for step := checkout.FirstStep; step <= checkout.LastStep; step++ {
		for _, f := range checkout.StepFields(step) {
			if v, ok := c.GetPostForm(f); ok {
				form[f] = v
			}
		}
	}
	return form
}

func redirect(c *gin.Context, p page.Page) {
	c.Redirect(http.StatusSeeOther, p.Path())
}

func renderError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, catalog.ErrUnknownTopping):
		status = http.StatusNotFound
	case errors.Is(err, checkout.ErrNotAtFinalStep):
		status = http.StatusConflict
	}
	c.String(status, http.StatusText(status))
}

// --------------------------------------------------
// GET /, /builder, /checkout, /confirmation
// --------------------------------------------------
func (h *Handler) ShowPage(c *gin.Context) {
	p, ok := page.Resolve(c.Request.URL.Path)
	if !ok {
		c.String(http.StatusNotFound, "page not found")
		return
	}

	view, err := h.service.View(c.Request.Context(), middleware.SessionID(c), p)
	if err != nil {
		renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, PageTemplate, view)
}

// --------------------------------------------------
// POST /toppings/:id   (checked=on to check, absent to uncheck)
// --------------------------------------------------
func (h *Handler) ToggleTopping(c *gin.Context) {
	checked := c.PostForm("checked") != ""

	view, err := h.service.SetTopping(
		c.Request.Context(),
		middleware.SessionID(c),
		c.Param("id"),
		checked,
	)
	if err != nil {
		renderError(c, err)
		return
	}
	redirect(c, view.Page)
}

// --------------------------------------------------
// POST /checkout/next
// --------------------------------------------------
func (h *Handler) NextStep(c *gin.Context) {
	view, _, err := h.service.Next(c.Request.Context(), middleware.SessionID(c), formFields(c))
	if err != nil {
		renderError(c, err)
		return
	}
	redirect(c, view.Page)
}

// --------------------------------------------------
// POST /checkout/prev
// --------------------------------------------------
func (h *Handler) PrevStep(c *gin.Context) {
	view, err := h.service.Prev(c.Request.Context(), middleware.SessionID(c), formFields(c))
	if err != nil {
		renderError(c, err)
		return
	}
	redirect(c, view.Page)
}

// --------------------------------------------------
// POST /checkout/submit
// --------------------------------------------------
func (h *Handler) SubmitCheckout(c *gin.Context) {
	view, _, err := h.service.Submit(c.Request.Context(), middleware.SessionID(c), formFields(c))
	if err != nil {
		renderError(c, err)
		return
	}
	redirect(c, view.Page)
}

// --------------------------------------------------
// POST /reset
// --------------------------------------------------
func (h *Handler) ResetOrder(c *gin.Context) {
	view, err := h.service.Reset(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		renderError(c, err)
		return
	}
	redirect(c, view.Page)
}
