package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gompdf/folio/internal/res"
	"github.com/gompdf/folio/internal/watch"
	"github.com/gompdf/folio/pkg/api"
)

var watchOut string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Repaint the preview whenever the content, theme or sections change",
	RunE: func(cmd *cobra.Command, args []string) error {
		loader := res.NewLoader("")
		in, err := loadInputs(loader)
		if err != nil {
			return err
		}

		out := watchOut
		if out == "" {
			out = filepath.Join(cfg.Preview.Output, "preview.png")
		}
		p := newPreviewer(in,
			api.WithDebounce(cfg.GetDebounce()),
			api.WithOnPaint(func(s api.Surface, page int) {
				if err := writeSurface(out, s); err != nil {
					logger.Error("failed to write preview", zap.Error(err))
					return
				}
				logger.Info("preview written", zap.String("path", out), zap.Int("page", page))
			}),
		)
		defer p.Destroy()
		in.update(p)

		if err := os.MkdirAll(filepath.Dir(cfg.Sections.Store), 0755); err != nil {
			return fmt.Errorf("failed to create preferences directory: %w", err)
		}
		files := []string{cfg.Sections.Store}
		if !strings.Contains(cfg.Content, "://") {
			files = append(files, cfg.Content)
		}
		if cfg.Theme.Override != "" {
			files = append(files, cfg.Theme.Override)
		}

		w, err := watch.New(files, func(path string) {
			loader.Invalidate(cfg.Content)
			loader.Invalidate(cfg.Theme.Override)
			next, err := loadInputs(loader)
			if err != nil {
				logger.Warn("keeping previous preview", zap.String("changed", path), zap.Error(err))
				return
			}
			next.update(p)
		}, logger)
		if err != nil {
			return err
		}

		logger.Info("watching for changes", zap.Strings("files", files))
		return w.Run(cmd.Context())
	},
}

func init() {
	watchCmd.Flags().StringVarP(&watchOut, "out", "o", "", "Output PNG path")
}
