package main

import (
	"io/fs"
	"os"

	"pizzeria/internal/catalog"
	"pizzeria/internal/config"
	"pizzeria/internal/logging"
	"pizzeria/internal/storage"
	"pizzeria/internal/web"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var assetDir string

var syncAssetsCmd = &cobra.Command{
	Use:   "sync-assets",
	Short: "Upload topping images to the R2 bucket",
	Long: `Uploads every catalog topping image to the configured R2 bucket.
Images come from the embedded static files unless --dir is given.

Example:
  pizzeria sync-assets --dir ./internal/web/static`,
	Args: cobra.NoArgs,
	RunE: runSyncAssets,
}

func init() {
	syncAssetsCmd.Flags().StringVar(&assetDir, "dir", "", "directory holding images/<topping>.svg (default: embedded)")
}

func runSyncAssets(cmd *cobra.Command, args []string) error {
	r2Cfg, err := config.LoadR2()
	if err != nil {
		return err
	}

	logger, err := logging.New(os.Getenv("APP_ENV") == config.EnvProduction)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cat, err := catalog.Default()
	if err != nil {
		return err
	}

	var fsys fs.FS = web.Static()
	if assetDir != "" {
		fsys = os.DirFS(assetDir)
	}

	client, err := storage.NewR2Client(cmd.Context(), r2Cfg)
	if err != nil {
		return err
	}

	urls, err := storage.SyncAssets(cmd.Context(), client, cat, fsys, logger)
	if err != nil {
		return err
	}
	logger.Info("assets synced", zap.Int("count", len(urls)), zap.String("base", r2Cfg.PublicBaseURL))
	return nil
}
