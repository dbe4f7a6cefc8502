// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	"yenisei/internal/database"
	"yenisei/internal/models"
)

// Storage engine names.
const (
	EngineMemory   = "memory"
	EngineSQLite   = "sqlite"
	EnginePostgres = "postgres"
)

// ErrNotSeeded is returned by Source.Load when no catalog kind holds a
// record yet.
var ErrNotSeeded = errors.New("catalog has not been seeded")

// Source is where a catalog lives between process restarts. Sync writes a
// dataset (skipping when data exists, unless replace is set) and returns
// what the engine now holds; Load returns the stored dataset as is.
type Source interface {
	Engine() string
	Load(ctx context.Context) (*models.Dataset, error)
	Sync(ctx context.Context, ds *models.Dataset, replace bool) (*models.Dataset, error)
	Close() error
}

// SourceConfig selects and locates a storage engine.
type SourceConfig struct {
	Engine      string
	SQLitePath  string
	PostgresDSN string
}

// NewSource opens the configured engine and applies migrations where the
// engine has a schema.
func NewSource(cfg SourceConfig) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Engine)) {
	case "", EngineMemory:
		return &memorySource{}, nil
	case EngineSQLite:
		db, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return newSQLSource(db, database.SQLite)
	case EnginePostgres:
		db, err := database.Connect(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		return newSQLSource(db, database.Postgres)
	default:
		return nil, fmt.Errorf("unsupported store engine: %s", cfg.Engine)
	}
}

type memorySource struct {
	mu sync.Mutex
	ds *models.Dataset
}

func (m *memorySource) Engine() string { return EngineMemory }

func (m *memorySource) Load(context.Context) (*models.Dataset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ds == nil {
		return nil, ErrNotSeeded
	}
	return m.ds, nil
}

func (m *memorySource) Sync(_ context.Context, ds *models.Dataset, replace bool) (*models.Dataset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ds == nil || replace {
		m.ds = ds
	}
	return m.ds, nil
}

func (m *memorySource) Close() error { return nil }

type sqlSource struct {
	db      *sql.DB
	dialect database.Dialect
}

func newSQLSource(db *sql.DB, dialect database.Dialect) (*sqlSource, error) {
	if err := database.Migrate(db, dialect); err != nil {
		db.Close()
		return nil, err
	}
	return &sqlSource{db: db, dialect: dialect}, nil
}

func (s *sqlSource) Engine() string {
	if s.dialect == database.SQLite {
		return EngineSQLite
	}
	return EnginePostgres
}

func (s *sqlSource) Load(ctx context.Context) (*models.Dataset, error) {
	ds, err := LoadSQL(ctx, s.db)
	if err != nil {
		return nil, err
	}
	if isEmpty(ds) {
		return nil, ErrNotSeeded
	}
	return ds, nil
}

func (s *sqlSource) Sync(ctx context.Context, ds *models.Dataset, replace bool) (*models.Dataset, error) {
	if _, err := database.Seed(ctx, s.db, s.dialect, ds, replace); err != nil {
		return nil, err
	}
	return LoadSQL(ctx, s.db)
}

func (s *sqlSource) Close() error { return s.db.Close() }

// isEmpty reports whether no catalog kind holds a record.
func isEmpty(ds *models.Dataset) bool {
	for _, n := range ds.Counts() {
		if n > 0 {
			return false
		}
	}
	return true
}
