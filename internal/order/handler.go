package order

import (
	"errors"
	"io"
	"net/http"

	"pizzeria/internal/catalog"
	"pizzeria/internal/checkout"
	"pizzeria/internal/middleware"
	"pizzeria/internal/page"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type toppingRequest struct {
	Checked *bool `json:"checked"`
}

type checkoutRequest struct {
	Fields checkout.Form `json:"fields"`
}

type cardFormatRequest struct {
	Value string `json:"value"`
}

// --------------------------------------------------
// GET /api/toppings
// --------------------------------------------------
func (h *Handler) Toppings(c *gin.Context) {
	cat := h.service.Catalog()
	c.JSON(http.StatusOK, gin.H{
		"base": gin.H{
			"name":  cat.BaseName(),
			"price": cat.BasePrice(),
		},
		"toppings": cat.Toppings(),
	})
}

// --------------------------------------------------
// GET /api/order?page=checkout
// --------------------------------------------------
func (h *Handler) GetOrder(c *gin.Context) {
	p, ok := page.Resolve(c.Query("page"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown page"})
		return
	}

	view, err := h.service.View(c.Request.Context(), middleware.SessionID(c), p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// --------------------------------------------------
// PUT /api/order/toppings/:id
// --------------------------------------------------
func (h *Handler) SetTopping(c *gin.Context) {
	var req toppingRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Checked == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "checked is required"})
		return
	}

	view, err := h.service.SetTopping(
		c.Request.Context(),
		middleware.SessionID(c),
		c.Param("id"),
		*req.Checked,
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// --------------------------------------------------
// POST /api/checkout/next
// --------------------------------------------------
func (h *Handler) Next(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	view, advanced, err := h.service.Next(c.Request.Context(), middleware.SessionID(c), req.Fields)
	if err != nil {
		respondError(c, err)
		return
	}
	if !advanced {
		c.JSON(http.StatusUnprocessableEntity, view)
		return
	}
	c.JSON(http.StatusOK, view)
}

// --------------------------------------------------
// POST /api/checkout/prev   (optional {"fields": {...}})
// --------------------------------------------------
func (h *Handler) Prev(c *gin.Context) {
	// the body is optional; without one nothing new is remembered
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	view, err := h.service.Prev(c.Request.Context(), middleware.SessionID(c), req.Fields)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// --------------------------------------------------
// POST /api/checkout/submit
// --------------------------------------------------
func (h *Handler) Submit(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	view, confirmed, err := h.service.Submit(c.Request.Context(), middleware.SessionID(c), req.Fields)
	if err != nil {
		respondError(c, err)
		return
	}
	if !confirmed {
		c.JSON(http.StatusUnprocessableEntity, view)
		return
	}
	c.JSON(http.StatusOK, view)
}

// --------------------------------------------------
// POST /api/order/reset
// --------------------------------------------------
func (h *Handler) Reset(c *gin.Context) {
	view, err := h.service.Reset(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// --------------------------------------------------
// POST /api/checkout/card-format
// --------------------------------------------------
func (h *Handler) FormatCard(c *gin.Context) {
	var req cardFormatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"value": checkout.FormatCardNumber(req.Value)})
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrUnknownTopping):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, checkout.ErrNotAtFinalStep):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
