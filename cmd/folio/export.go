package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gompdf/folio/internal/res"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every preview page as PDF or PNG",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := loadInputs(res.NewLoader(""))
		if err != nil {
			return err
		}
		applyPageBreakFlag(cmd, in)

		p := newPreviewer(in)
		defer p.Destroy()
		in.update(p)

		switch exportFormat {
		case "pdf":
			out := exportOut
			if out == "" {
				out = filepath.Join(cfg.Preview.Output, "preview.pdf")
			}
			if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", out, err)
			}
			if err := p.ExportPDF(f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d pages -> %s\n", p.TotalPages(), out)

		case "png":
			dir := exportOut
			if dir == "" {
				dir = cfg.Preview.Output
			}
			paths, err := p.ExportPNG(cmd.Context(), dir)
			if err != nil {
				return err
			}
			for _, path := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}

		default:
			return fmt.Errorf("unknown format %q (use pdf or png)", exportFormat)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "pdf", "Output format: pdf or png")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (pdf) or directory (png)")
	addPageBreakFlag(exportCmd)
}
