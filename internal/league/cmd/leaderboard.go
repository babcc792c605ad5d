package cmd

import (
	"github.com/spf13/cobra"

	"laptudirm.com/x/league/pkg/leaderboard"
)

func Leaderboard() *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboard competition-id",
		Short: "Show the standings of a competition",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "competition")
			if err != nil {
				return err
			}

			db, _, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			standings, err := db.Leaderboard(cmd.Context(), id)
			if err != nil {
				return err
			}

			leaderboard.Report(cmd.OutOrStdout(), standings)
			return nil
		},
	}
}
