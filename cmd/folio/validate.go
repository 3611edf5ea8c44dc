package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gompdf/folio/internal/content"
	"github.com/gompdf/folio/internal/res"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the config, content document and theme",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		failed := false
		report := func(what string, err error) {
			if err != nil {
				failed = true
				fmt.Fprintf(out, "FAIL %s: %v\n", what, err)
				return
			}
			fmt.Fprintf(out, "ok   %s\n", what)
		}

		report("config", cfg.Validate())

		loader := res.NewLoader("")
		data, err := loader.Fetch(cfg.Content)
		if err != nil {
			report("content", err)
		} else {
			report("content schema", content.Validate(data))
			c, err := content.Parse(data)
			if err == nil && len(c.Problems) > 0 {
				var errs []error
				for _, p := range c.Problems {
					errs = append(errs, errors.New(p.String()))
				}
				err = errors.Join(errs...)
			}
			report("content sections", err)
		}

		th, err := cfg.LoadTheme(cmd.Context(), loader)
		if err == nil {
			err = th.Validate()
		}
		report("theme", err)

		if failed {
			return errors.New("validation failed")
		}
		return nil
	},
}
