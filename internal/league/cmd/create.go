// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/league/pkg/leaderboard"
	"laptudirm.com/x/league/pkg/schedule"
	"laptudirm.com/x/league/pkg/store"
)

// CompetitionFile is the YAML description of a competition accepted by
// league create --file.
type CompetitionFile struct {
	Name        string                   `yaml:"name"`
	Format      string                   `yaml:"format"`
	Points      leaderboard.PointsSystem `yaml:"points"`
	Competitors []string                 `yaml:"competitors"`
}

// ReadCompetitionFile parses a competition description. Points which are
// not given keep their default 3-1-0 values.
func ReadCompetitionFile(path string) (*CompetitionFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	file := CompetitionFile{Points: leaderboard.DefaultPoints}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return &file, nil
}

// competitionFromFlags combines the --file and the flags and arguments of the
// create command into a store.NewCompetition. Flags override the file and
// arguments are appended to its competitors.
func competitionFromFlags(cmd *cobra.Command, args []string, owner string) (store.NewCompetition, error) {
	draft := store.NewCompetition{
		Owner:  owner,
		Points: leaderboard.DefaultPoints,
	}

	if path, _ := cmd.Flags().GetString("file"); path != "" {
		file, err := ReadCompetitionFile(path)
		if err != nil {
			return draft, err
		}

		draft.Name = file.Name
		draft.Format = file.Format
		draft.Points = file.Points
		draft.Competitors = append(draft.Competitors, file.Competitors...)
	}

	flags := cmd.Flags()
	if flags.Changed("name") {
		draft.Name, _ = flags.GetString("name")
	}
	if flags.Changed("format") {
		draft.Format, _ = flags.GetString("format")
	}
	if flags.Changed("win") {
		draft.Points.Win, _ = flags.GetInt("win")
	}
	if flags.Changed("draw") {
		draft.Points.Draw, _ = flags.GetInt("draw")
	}
	if flags.Changed("loss") {
		draft.Points.Loss, _ = flags.GetInt("loss")
	}

	draft.Competitors = append(draft.Competitors, args...)
	return draft, nil
}

// league create
func Create() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [competitor...]",
		Short: "Create a new competition and its schedule",
		Long: heredoc.Doc(`create stores a new competition between the given
			competitors and generates its complete schedule, in which
			every competitor meets every other competitor exactly once.

			The competition may be described in a YAML file with the
			--file flag:

			    name: Spring Cup
			    format: round-robin
			    points: { win: 3, draw: 1, loss: 0 }
			    competitors: [Ajax, Benfica, Celtic, Dynamo]

			Flags take precedence over the file, and competitors given
			as arguments are added after those listed in it. A
			round-robin competition needs an even number of competitors.`),
		Args: cobra.ArbitraryArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			db, cfg, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			draft, err := competitionFromFlags(cmd, args, cfg.Owner)
			if err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"name":        draft.Name,
				"competitors": len(draft.Competitors),
			}).Debug("Creating competition")

			var competition *store.Competition
			err = withSpinner("Generating schedule...", func() error {
				competition, err = db.CreateCompetition(cmd.Context(), draft)
				return err
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\x1b[92mCreated competition:\x1b[0m %s (#%d)\n\n", competition.Name, competition.ID)

			rounds, err := db.Schedule(cmd.Context(), competition.ID)
			if err != nil {
				return err
			}

			printRounds(cmd.OutOrStdout(), rounds)
			return nil
		},
	}

	cmd.Flags().StringP("file", "f", "", "YAML file describing the competition")
	cmd.Flags().StringP("name", "n", "", "Name of the competition")
	cmd.Flags().String("format", schedule.FormatRoundRobin, "Schedule format ("+strings.Join(schedule.Formats(), ", ")+")")
	cmd.Flags().Int("win", leaderboard.DefaultPoints.Win, "Points for a win")
	cmd.Flags().Int("draw", leaderboard.DefaultPoints.Draw, "Points for a draw")
	cmd.Flags().Int("loss", leaderboard.DefaultPoints.Loss, "Points for a loss")

	return cmd
}
