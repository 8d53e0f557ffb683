package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/pagelet/internal/replay"
)

func newReplayCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <script.yaml>",
		Short: "Play a scripted session without a terminal UI",
		Long: `Replay runs a YAML script of clicks, inputs, submissions and waits
against a fresh page session on a virtual clock, then prints the final page
state. Waits advance the virtual clock, so a script never sleeps.`,
		Args: cobra.ExactArgs(1),
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

			script, err := replay.Load(args[0])
			if err != nil {
				return newCommandError("load replay script", args[0], err, "Each step needs exactly one of click, click_class, input, submit or wait.")
			}

			snap, err := replay.NewRunner(pageLoader(cfg.Page.Path), log).Run(script)
			if err != nil {
				return newCommandError("replay script", args[0], err, "Run `pagelet check` to confirm the page has the elements the script uses.")
			}

			fmt.Fprint(cmd.OutOrStdout(), snap.String())
			return nil
		},
	}

	return cmd
}
