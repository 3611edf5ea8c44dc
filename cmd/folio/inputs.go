package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gompdf/folio/internal/content"
	"github.com/gompdf/folio/internal/res"
	"github.com/gompdf/folio/internal/sections"
	"github.com/gompdf/folio/internal/theme"
	"github.com/gompdf/folio/pkg/api"
)

// inputs are the three arguments of a preview update
type inputs struct {
	content   *content.Content
	theme     theme.Theme
	selection sections.Selection
}

func loadInputs(loader *res.Loader) (*inputs, error) {
	c, err := content.Load(loader, cfg.Content)
	if err != nil {
		return nil, err
	}
	for _, p := range c.Problems {
		logger.Warn("malformed section", zap.String("section", string(p.Section)), zap.Error(p.Cause))
	}

	th, err := cfg.LoadTheme(context.Background(), loader)
	if err != nil {
		return nil, err
	}

	sel, err := sections.NewStore(cfg.Sections.Store).Load()
	if err != nil {
		return nil, err
	}
	if !sel.PageBreakSet {
		sel.PageBreakBetweenSections = th.Layout.PageBreakBetweenSections
	}
	return &inputs{content: c, theme: th, selection: sel}, nil
}

// addPageBreakFlag registers --page-break, which overrides the saved preference
func addPageBreakFlag(cmd *cobra.Command) {
	cmd.Flags().Bool("page-break", false, "Start every section on a new page")
}

func applyPageBreakFlag(cmd *cobra.Command, in *inputs) {
	if cmd.Flags().Changed("page-break") {
		in.selection.PageBreakBetweenSections, _ = cmd.Flags().GetBool("page-break")
	}
}

func newPreviewer(in *inputs, opts ...api.Option) *api.Previewer {
	ps := cfg.GetPageSize()
	base := []api.Option{
		api.WithPageSize(ps.Width, ps.Height),
		api.WithZoom(cfg.Preview.Zoom),
		api.WithLogger(logger),
		api.WithDebounce(0),
		api.WithTitle(in.content.Name),
		api.WithAuthor(in.content.Name),
	}
	return api.New(append(base, opts...)...)
}

func (in *inputs) update(p *api.Previewer) {
	p.Update(in.content, &in.theme, in.selection.Order, api.UpdateOptions{
		PageBreakBetweenSections: in.selection.PageBreakBetweenSections,
	})
}
