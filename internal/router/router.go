package router

import (
	"net/http"
	"time"

	"pizzeria/internal/middleware"
	"pizzeria/internal/order"
	"pizzeria/internal/page"
	"pizzeria/internal/token"
	"pizzeria/internal/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DefaultOrigins are the local front-end dev servers.
var DefaultOrigins = []string{"http://localhost:3000", "http://localhost:5173"}

type Deps struct {
	Orders         *order.Handler
	Signer         *token.Signer
	Logger         *zap.Logger
	AllowedOrigins []string
	SecureCookies  bool
}

func NewRouter(d Deps) (*gin.Engine, error) {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	origins := d.AllowedOrigins
	if len(origins) == 0 {
		origins = DefaultOrigins
	}

	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(middleware.RequestLogger(logger), gin.Recovery())
	r.SetHTMLTemplate(tmpl)

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.StaticFS("/static", http.FS(web.Static()))

	session := middleware.Session(d.Signer, d.SecureCookies, logger)

	// ───────────────────────── PAGES ─────────────────────────
	pages := r.Group("/")
	pages.Use(session)
	{
		for _, p := range page.All() {
			pages.GET(p.Path(), d.Orders.ShowPage)
		}
		pages.GET("/"+string(page.Builder), d.Orders.ShowPage)

		pages.POST("/toppings/:id", d.Orders.ToggleTopping)
		pages.POST("/checkout/next", d.Orders.NextStep)
		pages.POST("/checkout/prev", d.Orders.PrevStep)
		pages.POST("/checkout/submit", d.Orders.SubmitCheckout)
		pages.POST("/reset", d.Orders.ResetOrder)
	}

	// ───────────────────────── API ─────────────────────────
	api := r.Group("/api")
	api.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}), session)
	{
		api.GET("/toppings", d.Orders.Toppings)
		api.GET("/order", d.Orders.GetOrder)
		api.PUT("/order/toppings/:id", d.Orders.SetTopping)
		api.POST("/order/reset", d.Orders.Reset)
		api.POST("/checkout/next", d.Orders.Next)
		api.POST("/checkout/prev", d.Orders.Prev)
		api.POST("/checkout/submit", d.Orders.Submit)
		api.POST("/checkout/card-format", d.Orders.FormatCard)

		// preflights are answered by cors before this handler runs
		api.OPTIONS("/*path", func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
	}

	return r, nil
}
