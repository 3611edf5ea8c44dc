package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gompdf/folio/internal/render/raster"
	"github.com/gompdf/folio/internal/res"
	"github.com/gompdf/folio/pkg/api"
)

var (
	previewPage int
	previewZoom float64
	previewOut  string
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Paint one page of the preview to a PNG file",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := loadInputs(res.NewLoader(""))
		if err != nil {
			return err
		}
		applyPageBreakFlag(cmd, in)

		opts := []api.Option{}
		if cmd.Flags().Changed("zoom") {
			opts = append(opts, api.WithZoom(previewZoom))
		}
		p := newPreviewer(in, opts...)
		defer p.Destroy()
		in.update(p)

		for p.CurrentPage() < previewPage && p.CurrentPage() < p.TotalPages() {
			p.NextPage()
		}
		if p.CurrentPage() != previewPage {
			logger.Warn("page out of range, using nearest",
				zap.Int("requested", previewPage),
				zap.Int("page", p.CurrentPage()),
				zap.Int("total", p.TotalPages()))
		}

		out := previewOut
		if out == "" {
			out = filepath.Join(cfg.Preview.Output, "preview.png")
		}
		if err := writeSurface(out, p.Surface()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "page %d of %d at %.2fx -> %s\n", p.CurrentPage(), p.TotalPages(), p.Zoom(), out)
		return nil
	},
}

func init() {
	previewCmd.Flags().IntVarP(&previewPage, "page", "p", 1, "Page to paint (1-based)")
	previewCmd.Flags().Float64VarP(&previewZoom, "zoom", "z", 1, "Zoom factor (0.5 to 2)")
	previewCmd.Flags().StringVarP(&previewOut, "out", "o", "", "Output PNG path")
	addPageBreakFlag(previewCmd)
}

// writeSurface encodes a raster surface to path
func writeSurface(path string, s api.Surface) error {
	rs, ok := s.(*raster.Surface)
	if !ok {
		return fmt.Errorf("preview surface %T cannot be written as PNG", s)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := rs.EncodePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
