package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gompdf/folio/internal/layout"
	"github.com/gompdf/folio/internal/res"
	"github.com/gompdf/folio/pkg/api"
)

var paginateJSON bool

var paginateCmd = &cobra.Command{
	Use:   "paginate",
	Short: "Print the estimated page layout",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := loadInputs(res.NewLoader(""))
		if err != nil {
			return err
		}
		applyPageBreakFlag(cmd, in)

		p := newPreviewer(in)
		defer p.Destroy()
		in.update(p)

		summary := summarize(p.Pages())
		if paginateJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(summary)
		}
		return writeSummary(cmd.OutOrStdout(), summary)
	},
}

func init() {
	paginateCmd.Flags().BoolVar(&paginateJSON, "json", false, "Print JSON")
	addPageBreakFlag(paginateCmd)
}

type elementSummary struct {
	Kind   layout.Kind `json:"kind"`
	Text   string      `json:"text,omitempty"`
	Y      float64     `json:"y"`
	Height float64     `json:"height"`
}

type pageSummary struct {
	Number   int              `json:"number"`
	Used     float64          `json:"used"`
	Elements []elementSummary `json:"elements"`
}

func summarize(pages []*api.Page) []pageSummary {
	out := make([]pageSummary, 0, len(pages))
	for _, page := range pages {
		ps := pageSummary{Number: page.Number, Used: page.CurrentY}
		for _, el := range page.Elements {
			es := elementSummary{Kind: el.Kind(), Y: el.GetY(), Height: el.GetHeight()}
			switch e := el.(type) {
			case *layout.Leaf:
				es.Text = e.Text
			case *layout.Group:
				if len(e.Children) > 0 {
					es.Text = e.Children[0].Text
				}
			}
			ps.Elements = append(ps.Elements, es)
		}
		out = append(out, ps)
	}
	return out
}

func writeSummary(w io.Writer, pages []pageSummary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, page := range pages {
		fmt.Fprintf(tw, "page %d\t\t\t(%.0fpt used)\n", page.Number, page.Used)
		for _, el := range page.Elements {
			fmt.Fprintf(tw, "  %s\t%.0f\t%.0f\t%s\n", el.Kind, el.Y, el.Height, el.Text)
		}
	}
	return tw.Flush()
}
