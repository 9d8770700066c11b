package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pizzeria/internal/catalog"
	"pizzeria/internal/config"
	"pizzeria/internal/db"
	"pizzeria/internal/logging"
	"pizzeria/internal/order"
	"pizzeria/internal/router"
	"pizzeria/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

var (
	sessionTTL    time.Duration
	sweepInterval time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `Starts the HTML pages and the JSON API on $PORT.

Order sessions live in Postgres when DATABASE_URL is set and in memory otherwise.
Sessions untouched for --session-ttl are deleted every --sweep-interval.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().DurationVar(&sessionTTL, "session-ttl", token.DefaultTTL, "lifetime of the session cookie and its stored order")
	serveCmd.Flags().DurationVar(&sweepInterval, "sweep-interval", 10*time.Minute, "how often expired order sessions are deleted")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Production())
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ───────────────────────── STORE ─────────────────────────
	repo, closeRepo, err := openRepository(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRepo()

	// ───────────────────────── CATALOG ─────────────────────────
	cat, err := catalog.Default()
	if err != nil {
		return err
	}
	imageBase := cfg.AssetBaseURL
	if imageBase == "" {
		imageBase = "/static"
	}
	cat = cat.WithImageBase(imageBase)

	// ───────────────────────── SERVICES ─────────────────────────
	signer, err := token.NewSigner(cfg.SessionSecret, sessionTTL)
	if err != nil {
		return err
	}
	orderService := order.NewService(repo, cat, order.WithLogger(logger))

	r, err := router.NewRouter(router.Deps{
		Orders:         order.NewHandler(orderService),
		Signer:         signer,
		Logger:         logger,
		AllowedOrigins: cfg.AllowedOrigins,
		SecureCookies:  cfg.SecureCookies,
	})
	if err != nil {
		return err
	}

	// ───────────────────────── START ─────────────────────────
	srv := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("api running", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return orderService.RunSweeper(gctx, signer.TTL(), sweepInterval)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func openRepository(ctx context.Context, cfg config.Config, logger *zap.Logger) (order.Repository, func(), error) {
	if cfg.DatabaseURL == "" {
		logger.Warn("DATABASE_URL not set, order sessions are kept in memory")
		return order.NewInMemoryRepository(), func() {}, nil
	}

	pool, err := db.ConnectPostgres(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return nil, nil, err
	}
	return order.NewPostgresRepository(pool), pool.Close, nil
}
