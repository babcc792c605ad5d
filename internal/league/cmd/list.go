package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func List() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your competitions",
		Args:  cobra.ExactArgs(0),

		RunE: func(cmd *cobra.Command, args []string) error {
			db, cfg, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			competitions, err := db.Competitions(cmd.Context(), cfg.Owner)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(competitions) == 0 {
				fmt.Fprintln(w, "\x1b[31mNo Competitions Found.\x1b[0m")
				return nil
			}

			for _, competition := range competitions {
				points := competition.PointsSystem
				fmt.Fprintf(w, "- \x1b[34m#%-5d\x1b[0m %-30s %-12s %d/%d/%d  %s\n",
					competition.ID, competition.Name, competition.Format,
					points.Win, points.Draw, points.Lost,
					competition.CreatedAt.Format("2006-01-02"))
			}

			return nil
		},
	}
}
