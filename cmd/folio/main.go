package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gompdf/folio/internal/config"
)

var (
	// Global flags
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "folio - portfolio document preview",
	Long: `folio lays out a portfolio JSON document onto fixed-size pages and
paints a preview of them.

Pages are estimated from the theme's typography, so the preview follows the
flow of the exported document closely but not exactly.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		zc := zap.NewProductionConfig()
		level, err := zapcore.ParseLevel(cfg.Logging.Level)
		if err != nil {
			level = zapcore.InfoLevel
		}
		if verbose {
			level = zapcore.DebugLevel
		}
		zc.Level = zap.NewAtomicLevelAt(level)
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(paginateCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(sectionsCmd)
	rootCmd.AddCommand(watchCmd)
}

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
