package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gompdf/folio/internal/content"
	"github.com/gompdf/folio/internal/sections"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "Show the saved section order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sel, err := sections.NewStore(cfg.Sections.Store).Load()
		if err != nil {
			return err
		}
		printSelection(cmd.OutOrStdout(), sel)
		return nil
	},
}

var sectionsMoveCmd = &cobra.Command{
	Use:   "move SECTION up|down|N",
	Short: "Move a section earlier or later in the order",
	Long: `Move a section one place up or down, or by N places. Negative N moves
towards the start; pass it after "--" so it is not read as a flag.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		delta, err := parseDelta(args[1])
		if err != nil {
			return err
		}
		return editSelection(cmd, func(sel sections.Selection) (sections.Selection, error) {
			return sel.Move(content.SectionID(args[0]), delta)
		})
	},
}

var sectionsToggleCmd = &cobra.Command{
	Use:   "toggle SECTION",
	Short: "Include or exclude a section",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editSelection(cmd, func(sel sections.Selection) (sections.Selection, error) {
			return sel.Toggle(content.SectionID(args[0]))
		})
	},
}

var sectionsPageBreakCmd = &cobra.Command{
	Use:   "page-break true|false",
	Short: "Set whether every section starts on a new page",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		on, err := strconv.ParseBool(args[0])
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", args[0], err)
		}
		return editSelection(cmd, func(sel sections.Selection) (sections.Selection, error) {
			return sel.SetPageBreak(on), nil
		})
	},
}

func init() {
	sectionsCmd.AddCommand(sectionsMoveCmd)
	sectionsCmd.AddCommand(sectionsToggleCmd)
	sectionsCmd.AddCommand(sectionsPageBreakCmd)
}

func parseDelta(s string) (int, error) {
	switch s {
	case "up":
		return -1, nil
	case "down":
		return 1, nil
	}
	delta, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid move %q (use up, down or a number)", s)
	}
	return delta, nil
}

func editSelection(cmd *cobra.Command, edit func(sections.Selection) (sections.Selection, error)) error {
	store := sections.NewStore(cfg.Sections.Store)
	sel, err := store.Load()
	if err != nil {
		return err
	}
	sel, err = edit(sel)
	if err != nil {
		return err
	}
	if err := store.Save(sel); err != nil {
		return err
	}
	printSelection(cmd.OutOrStdout(), sel)
	return nil
}

func printSelection(w io.Writer, sel sections.Selection) {
	for _, id := range content.AllSections {
		mark := " "
		if sel.Includes(id) {
			mark = "x"
		}
		fmt.Fprintf(w, "[%s] %s\n", mark, id)
	}
	fmt.Fprint(w, "order:")
	for _, id := range sel.Order {
		fmt.Fprintf(w, " %s", id)
	}
	fmt.Fprintf(w, "\npage break between sections: %t\n", sel.PageBreakBetweenSections)
}
