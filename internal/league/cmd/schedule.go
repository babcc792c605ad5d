package cmd

import (
	"github.com/spf13/cobra"
)

func Schedule() *cobra.Command {
	return &cobra.Command{
		Use:   "schedule competition-id",
		Short: "Show the schedule and results of a competition",
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

			rounds, err := db.Schedule(cmd.Context(), id)
			if err != nil {
				return err
			}

			printRounds(cmd.OutOrStdout(), rounds)
			return nil
		},
	}
}
