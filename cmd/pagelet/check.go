package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/pagelet/internal/behavior"
	"github.com/alexisbeaulieu97/pagelet/internal/schedule"
)

func newCheckCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report which behaviors bind to a page",
		Long: `Check loads the page, wires every behavior against it and prints which
ones bound. Exits with code 2 when any behavior failed to bind.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load(cmd)
			if err != nil {
				return err
			}
			log, closer, err := root.logger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closer.Close()

			doc, err := pageLoader(cfg.Page.Path)()
			if err != nil {
				return newCommandError("load page", pageLabel(cfg.Page.Path), err, "Fix the page document and run check again.")
			}

			report := behavior.New(log, schedule.NewManual()).Init(doc)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "page: %s\n", pageLabel(cfg.Page.Path))
			failed := 0
			for _, res := range report.Results {
				if res.Err != nil {
					failed++
					fmt.Fprintf(out, "  ✗ %-10s %v\n", res.Name, res.Err)
					continue
				}
				fmt.Fprintf(out, "  ✓ %s\n", res.Name)
			}

			if failed > 0 {
				return newResultError(2, "%d of %d behaviors failed to bind", failed, len(report.Results))
			}
			return nil
		},
	}

	return cmd
}
