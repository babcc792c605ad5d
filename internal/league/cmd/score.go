package cmd

import (
	"fmt"
	"strconv"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

func Score() *cobra.Command {
	return &cobra.Command{
		Use:   "score match-id first-score second-score",
		Short: "Report the result of a match",
		Long: heredoc.Doc(`score records the scores of both competitors of a match.
			The match ids are listed by the schedule command. Reporting
			a match again replaces its previous result.`),
		Args: cobra.ExactArgs(3),

		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "match")
			if err != nil {
				return err
			}

			var scores [2]int
			for i, arg := range args[1:] {
				scores[i], err = strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid score %q", arg)
				}
			}

			db, _, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.ReportScore(cmd.Context(), id, scores[0], scores[1]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Reported match \x1b[32m#%d\x1b[0m: %d:%d\n", id, scores[0], scores[1])
			return nil
		},
	}
}
