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

// Package config loads the settings of league. Values are taken, in
// increasing order of precedence, from the YAML configuration file and
// from LEAGUE_* environment variables, which may themselves be provided
// by a .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds the configuration of league.
type Config struct {
	Database Database `yaml:"database"`

	// Owner is the token identifying the user who owns new competitions.
	Owner string `yaml:"owner"`
}

// Database holds the PostgreSQL connection settings. A non-empty DSN takes
// precedence over the individual fields.
type Database struct {
	DSN string `yaml:"dsn"`

	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"database"`

	// Insecure disables TLS for the connection.
	Insecure bool `yaml:"insecure"`
}

// Addr returns the host:port address of the database.
func (db Database) Addr() string {
	return fmt.Sprintf("%s:%d", db.Host, db.Port)
}

// Default returns the configuration used when nothing else is provided.
func Default() Config {
	return Config{
		Database: Database{
			Host: "localhost",
			Port: 5432,
		},
	}
}

// Load reads the configuration from the given YAML file and applies the
// environment on top of it. If path is empty the default File is used,
// and it is not an error for that file to be missing.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = File
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		logrus.WithField("path", path).Debug("Reading configuration file")
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}

	case errors.Is(err, fs.ErrNotExist) && !explicit:
		logrus.WithField("path", path).Trace("No configuration file found")

	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (cfg *Config) applyEnv() error {
	setString := func(dst *string, key string) {
		if value, found := os.LookupEnv(key); found {
			*dst = value
		}
	}

	setString(&cfg.Owner, "LEAGUE_OWNER")
	setString(&cfg.Database.DSN, "LEAGUE_DB_DSN")
	setString(&cfg.Database.User, "LEAGUE_DB_USER")
	setString(&cfg.Database.Password, "LEAGUE_DB_PASSWORD")
	setString(&cfg.Database.Host, "LEAGUE_DB_HOST")
	setString(&cfg.Database.Name, "LEAGUE_DB_DATABASE")

	if value, found := os.LookupEnv("LEAGUE_DB_PORT"); found {
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid LEAGUE_DB_PORT %q: %w", value, err)
		}
		cfg.Database.Port = port
	}

	if value, found := os.LookupEnv("LEAGUE_DB_INSECURE"); found {
		insecure, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid LEAGUE_DB_INSECURE %q: %w", value, err)
		}
		cfg.Database.Insecure = insecure
	}

	return nil
}
