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

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/uptrace/bun"

	"laptudirm.com/x/league/pkg/leaderboard"
	"laptudirm.com/x/league/pkg/schedule"
)

// NewCompetition describes a competition to be created.
type NewCompetition struct {
	Name   string
	Owner  string
	Format string
	Points leaderboard.PointsSystem

	// Competitors are the names of the entrants. Their order decides the
	// pairings of the generated schedule.
	Competitors []string
}

func (draft *NewCompetition) validate() error {
	if strings.TrimSpace(draft.Name) == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidCompetition)
	}

	seen := make(map[string]bool, len(draft.Competitors))
	for i, name := range draft.Competitors {
		name = strings.TrimSpace(name)
		if name == "" {
			return fmt.Errorf("%w: competitor #%d has no name", ErrInvalidCompetition, i+1)
		}

		if seen[name] {
			return fmt.Errorf("%w: competitor %q entered twice", ErrInvalidCompetition, name)
		}

		seen[name] = true
	}

	return nil
}

// CreateCompetition stores a new competition along with its competitors and
// its whole schedule: a round row for every round, and for every match a
// match row referencing one empty score row per competitor. Everything is
// written in a single transaction, so either the whole competition exists
// or nothing does.
//
// Errors from the schedule generator are returned as is and can be
// inspected with errors.Is.
func (store *Store) CreateCompetition(ctx context.Context, draft NewCompetition) (*Competition, error) {
	if err := draft.validate(); err != nil {
		return nil, err
	}

	generate, err := schedule.New[int64](draft.Format)
	if err != nil {
		return nil, err
	}

	if draft.Format == "" {
		draft.Format = schedule.FormatRoundRobin
	}

	competition := &Competition{
		Name:   strings.TrimSpace(draft.Name),
		Format: draft.Format,
	}

	err = store.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		points, err := findOrCreatePointsSystem(ctx, tx, draft.Points)
		if err != nil {
			return err
		}

		owner, err := findOrCreateUser(ctx, tx, draft.Owner)
		if err != nil {
			return err
		}

		competition.UserID = owner.ID
		competition.PointsSystemID = points.ID
		competition.Owner, competition.PointsSystem = owner, points

		err = tx.NewInsert().
			Model(competition).
			ExcludeColumn("id", "created_at").
			Returning("id, created_at").
			Scan(ctx, &competition.ID, &competition.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to create competition: %w", err)
		}
		logrus.WithField("competition", competition.ID).Debug("Created competition")

		ids := make([]int64, len(draft.Competitors))
		for i, name := range draft.Competitors {
			competitor := &Competitor{CompetitionID: competition.ID, Name: strings.TrimSpace(name)}
			if err := insert(ctx, tx, competitor, &competitor.ID); err != nil {
				return fmt.Errorf("failed to create competitor %q: %w", name, err)
			}

			ids[i] = competitor.ID
			logrus.WithFields(logrus.Fields{
				"competitor": competitor.ID,
				"name":       competitor.Name,
			}).Trace("Created competitor")
		}

		rounds, err := generate(ids)
		if err != nil {
			return err
		}

		logrus.WithFields(logrus.Fields{
			"competition": competition.ID,
			"rounds":      len(rounds),
		}).Debug("Generated schedule")

		return saveSchedule(ctx, tx, competition.ID, rounds)
	})
	if err != nil {
		return nil, err
	}

	return competition, nil
}

func saveSchedule(ctx context.Context, tx bun.Tx, competitionID int64, rounds []schedule.Round[int64]) error {
	for _, r := range rounds {
		round := &Round{CompetitionID: competitionID, RoundNumber: r.Number}
		if err := insert(ctx, tx, round, &round.ID); err != nil {
			return fmt.Errorf("failed to create round %d: %w", r.Number, err)
		}

		for _, m := range r.Matches {
			score1 := &Score{CompetitorID: m.First}
			if err := insert(ctx, tx, score1, &score1.ID); err != nil {
				return fmt.Errorf("failed to create score: %w", err)
			}

			score2 := &Score{CompetitorID: m.Second}
			if err := insert(ctx, tx, score2, &score2.ID); err != nil {
				return fmt.Errorf("failed to create score: %w", err)
			}

			match := &Match{RoundID: round.ID, Score1ID: score1.ID, Score2ID: score2.ID}
			if err := insert(ctx, tx, match, &match.ID); err != nil {
				return fmt.Errorf("failed to create match: %w", err)
			}

			logrus.WithFields(logrus.Fields{
				"round": r.Number,
				"match": match.ID,
			}).Trace("Created match")
		}
	}

	return nil
}

// insert inserts model and scans its generated id into id.
func insert(ctx context.Context, tx bun.Tx, model any, id *int64) error {
	return tx.NewInsert().
		Model(model).
		ExcludeColumn("id").
		Returning("id").
		Scan(ctx, id)
}

func findOrCreatePointsSystem(ctx context.Context, tx bun.Tx, values leaderboard.PointsSystem) (*PointsSystem, error) {
	points := new(PointsSystem)
	err := tx.NewSelect().
		Model(points).
		Where("win = ? AND lost = ? AND draw = ?", values.Win, values.Loss, values.Draw).
		Limit(1).
		Scan(ctx)
	switch {
	case err == nil:
		logrus.WithField("points-system", points.ID).Debug("Points system exists")
		return points, nil

	case !errors.Is(err, sql.ErrNoRows):
		return nil, fmt.Errorf("failed to look up points system: %w", err)
	}

	points = &PointsSystem{Win: values.Win, Lost: values.Loss, Draw: values.Draw}
	if err := insert(ctx, tx, points, &points.ID); err != nil {
		return nil, fmt.Errorf("failed to create points system: %w", err)
	}

	logrus.WithField("points-system", points.ID).Debug("Created points system")
	return points, nil
}

func findOrCreateUser(ctx context.Context, tx bun.Tx, token string) (*User, error) {
	user := new(User)
	err := tx.NewSelect().
		Model(user).
		Where("token = ?", token).
		Limit(1).
		Scan(ctx)
	switch {
	case err == nil:
		return user, nil

	case !errors.Is(err, sql.ErrNoRows):
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	user = &User{Token: token}
	if err := insert(ctx, tx, user, &user.ID); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logrus.WithField("user", user.ID).Debug("Created user")
	return user, nil
}

// Competitions returns the competitions owned by the given user, newest
// first.
func (store *Store) Competitions(ctx context.Context, owner string) ([]Competition, error) {
	var competitions []Competition
	err := store.db.NewSelect().
		Model(&competitions).
		Relation("Owner").
		Relation("PointsSystem").
		Where("owner.token = ?", owner).
		Order("c.created_at DESC", "c.id DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list competitions: %w", err)
	}

	return competitions, nil
}

// Competition returns the competition with the given id.
func (store *Store) Competition(ctx context.Context, id int64) (*Competition, error) {
	competition := new(Competition)
	err := store.db.NewSelect().
		Model(competition).
		Relation("Owner").
		Relation("PointsSystem").
		Where("c.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("competition %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get competition: %w", err)
	}

	return competition, nil
}

// Competitors returns the competitors of a competition in entry order.
func (store *Store) Competitors(ctx context.Context, competitionID int64) ([]Competitor, error) {
	var competitors []Competitor
	err := store.db.NewSelect().
		Model(&competitors).
		Where("competition_id = ?", competitionID).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list competitors: %w", err)
	}

	return competitors, nil
}
