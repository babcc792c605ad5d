package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/uptrace/bun"

	"laptudirm.com/x/league/pkg/leaderboard"
)

// MatchView is a stored match with its competitors and reported scores.
type MatchView struct {
	ID    int64
	Round int

	First, Second leaderboard.Competitor

	// FirstScore and SecondScore are nil until the match is reported.
	FirstScore, SecondScore *int
}

// Played reports whether the score of the match has been reported.
func (match *MatchView) Played() bool {
	return match.FirstScore != nil && match.SecondScore != nil
}

// RoundView is a stored round with its matches in schedule order.
type RoundView struct {
	Number  int
	Matches []MatchView
}

// Schedule returns the rounds of a competition in order, each with its
// matches in the order they were generated.
func (store *Store) Schedule(ctx context.Context, competitionID int64) ([]RoundView, error) {
	if _, err := store.Competition(ctx, competitionID); err != nil {
		return nil, err
	}

	competitors, err := store.Competitors(ctx, competitionID)
	if err != nil {
		return nil, err
	}

	names := make(map[int64]string, len(competitors))
	for _, competitor := range competitors {
		names[competitor.ID] = competitor.Name
	}

	var rounds []Round
	err = store.db.NewSelect().
		Model(&rounds).
		Where("competition_id = ?", competitionID).
		Order("round_number ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rounds: %w", err)
	}

	if len(rounds) == 0 {
		return []RoundView{}, nil
	}

	roundIDs := make([]int64, len(rounds))
	views := make([]RoundView, len(rounds))
	index := make(map[int64]*RoundView, len(rounds))
	for i, round := range rounds {
		roundIDs[i] = round.ID
		views[i].Number = round.RoundNumber
		index[round.ID] = &views[i]
	}

	var matches []Match
	err = store.db.NewSelect().
		Model(&matches).
		Relation("Score1").
		Relation("Score2").
		Where("m.round_id IN (?)", bun.In(roundIDs)).
		Order("m.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	for _, match := range matches {
		round := index[match.RoundID]
		round.Matches = append(round.Matches, MatchView{
			ID:    match.ID,
			Round: round.Number,

			First:  leaderboard.Competitor{ID: match.Score1.CompetitorID, Name: names[match.Score1.CompetitorID]},
			Second: leaderboard.Competitor{ID: match.Score2.CompetitorID, Name: names[match.Score2.CompetitorID]},

			FirstScore:  match.Score1.Score,
			SecondScore: match.Score2.Score,
		})
	}

	return views, nil
}

// ReportScore records the scores of both sides of a match. Reporting a
// match again replaces the previous scores.
func (store *Store) ReportScore(ctx context.Context, matchID int64, first, second int) error {
	if first < 0 || second < 0 {
		return ErrInvalidScore
	}

	return store.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		match := new(Match)
		err := tx.NewSelect().
			Model(match).
			Where("id = ?", matchID).
			For("UPDATE").
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("match %d: %w", matchID, ErrNotFound)
			}
			return fmt.Errorf("failed to get match: %w", err)
		}

		for _, score := range []struct {
			id    int64
			value int
		}{{match.Score1ID, first}, {match.Score2ID, second}} {
			_, err := tx.NewUpdate().
				Model((*Score)(nil)).
				Set("score = ?", score.value).
				Where("id = ?", score.id).
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to update score: %w", err)
			}
		}

		logrus.WithFields(logrus.Fields{
			"match":  matchID,
			"result": fmt.Sprintf("%d-%d", first, second),
		}).Debug("Reported score")
		return nil
	})
}

// Leaderboard returns the current standings of a competition under its
// points system.
func (store *Store) Leaderboard(ctx context.Context, competitionID int64) ([]leaderboard.Standing, error) {
	competition, err := store.Competition(ctx, competitionID)
	if err != nil {
		return nil, err
	}

	competitors, err := store.Competitors(ctx, competitionID)
	if err != nil {
		return nil, err
	}

	rounds, err := store.Schedule(ctx, competitionID)
	if err != nil {
		return nil, err
	}

	entrants := make([]leaderboard.Competitor, len(competitors))
	for i, competitor := range competitors {
		entrants[i] = leaderboard.Competitor{ID: competitor.ID, Name: competitor.Name}
	}

	var matches []leaderboard.Match
	for _, round := range rounds {
		for _, match := range round.Matches {
			matches = append(matches, leaderboard.Match{
				First:       match.First.ID,
				Second:      match.Second.ID,
				FirstScore:  match.FirstScore,
				SecondScore: match.SecondScore,
			})
		}
	}

	points := leaderboard.PointsSystem{
		Win:  competition.PointsSystem.Win,
		Draw: competition.PointsSystem.Draw,
		Loss: competition.PointsSystem.Lost,
	}

	return leaderboard.Compute(points, entrants, matches), nil
}
