package cmd

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"laptudirm.com/x/league/pkg/schedule"
)

// league preview
func Preview() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview competitor...",
		Short: "Show the schedule for the given competitors",
		Long: heredoc.Doc(`preview prints the schedule that would be generated for a
			competition between the given competitors, without storing
			anything.

			The order of the competitors decides the pairings: the
			first competitor stays in place while the others rotate
			around it from round to round.`),
		Args: cobra.MinimumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")

			generate, err := schedule.New[string](format)
			if err != nil {
				return err
			}

			rounds, err := generate(args)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, round := range rounds {
				fmt.Fprintf(w, "\x1b[33mRound #%d\x1b[0m\n", round.Number)
				for _, match := range round.Matches {
					fmt.Fprintf(w, "  %s vs %s\n", match.First, match.Second)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringP("format", "f", schedule.FormatRoundRobin, "Schedule format ("+strings.Join(schedule.Formats(), ", ")+")")
	return cmd
}
