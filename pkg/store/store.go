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

// Package store persists competitions, their schedules and reported scores
// in PostgreSQL.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"laptudirm.com/x/league/pkg/config"
)

var (
	// ErrNotFound is returned when a competition or match does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidScore is returned when a reported score is negative.
	ErrInvalidScore = errors.New("scores must not be negative")

	// ErrInvalidCompetition is returned when a new competition is missing
	// a name or has unusable competitor names.
	ErrInvalidCompetition = errors.New("invalid competition")
)

// Store is a PostgreSQL backed store of competitions. It is safe for
// concurrent use.
type Store struct {
	db *bun.DB
}

// New returns a Store using the given database.
func New(db *bun.DB) *Store {
	return &Store{db: db}
}

// Open connects to the database described by cfg.
func Open(ctx context.Context, cfg config.Database) (*Store, error) {
	sqldb := sql.OpenDB(connector(cfg))
	if err := sqldb.PingContext(ctx); err != nil {
		_ = sqldb.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logrus.WithField("database", cfg.Name).Debug("Connected to database")
	return New(bun.NewDB(sqldb, pgdialect.New())), nil
}

func connector(cfg config.Database) *pgdriver.Connector {
	var opts []pgdriver.Option
	if cfg.DSN != "" {
		opts = append(opts, pgdriver.WithDSN(cfg.DSN))
	} else {
		opts = append(opts,
			pgdriver.WithAddr(cfg.Addr()),
			pgdriver.WithUser(cfg.User),
			pgdriver.WithPassword(cfg.Password),
			pgdriver.WithDatabase(cfg.Name),
		)
	}

	if cfg.Insecure {
		opts = append(opts, pgdriver.WithInsecure(true))
	}

	return pgdriver.NewConnector(opts...)
}

// DB returns the underlying database handle.
func (store *Store) DB() *bun.DB {
	return store.db
}

// Close closes the database connection pool.
func (store *Store) Close() error {
	return store.db.Close()
}

// Migrate creates every table which does not exist yet.
func (store *Store) Migrate(ctx context.Context) error {
	return store.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for _, model := range models {
			_, err := tx.NewCreateTable().
				Model(model).
				IfNotExists().
				WithForeignKeys().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to create table for %T: %w", model, err)
			}
		}

		_, err := tx.NewCreateIndex().
			Model((*Round)(nil)).
			Index("rounds_competition_number_idx").
			IfNotExists().
			Unique().
			Column("competition_id", "round_number").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create rounds index: %w", err)
		}

		logrus.Debug("Database schema is up to date")
		return nil
	})
}
