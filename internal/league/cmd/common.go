package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"laptudirm.com/x/league/pkg/config"
	"laptudirm.com/x/league/pkg/store"
)

const SPIN = 31

// loadConfig reads the configuration selected by the --config flag. An
// explicit --owner flag overrides the configured owner.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if flag := cmd.Flag("owner"); flag != nil && (flag.Changed || cfg.Owner == "") {
		cfg.Owner = flag.Value.String()
	}

	return cfg, nil
}

// openStore loads the configuration and connects to the database.
func openStore(cmd *cobra.Command) (*store.Store, *config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	db, err := store.Open(ctx, cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	return db, cfg, nil
}

// withSpinner shows a spinner on stderr while work runs.
func withSpinner(message string, work func() error) error {
	s := spinner.New(
		spinner.CharSets[SPIN], 100*time.Millisecond,
		spinner.WithWriter(os.Stderr),
		spinner.WithSuffix(" "+message),
	)
	s.Start()
	defer s.Stop()

	return work()
}

func parseID(arg, what string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q", what, arg)
	}

	return id, nil
}

func printRounds(w io.Writer, rounds []store.RoundView) {
	for _, round := range rounds {
		fmt.Fprintf(w, "\x1b[33mRound #%d\x1b[0m\n", round.Number)
		for _, match := range round.Matches {
			result := "-:-"
			if match.Played() {
				result = fmt.Sprintf("%d:%d", *match.FirstScore, *match.SecondScore)
			}

			fmt.Fprintf(w, "  [%4d] %-20s vs %-20s %s\n",
				match.ID, match.First.Name, match.Second.Name, result)
		}
	}
}
