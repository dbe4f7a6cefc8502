// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"yenisei/internal/models"
)

// SeedResult reports what a Seed call did.
type SeedResult struct {
	Skipped  bool
	Replaced bool
	Counts   map[string]int
}

// CatalogTables lists the catalog tables, owners before the rows that
// reference them.
var CatalogTables = []string{
	"epochs",
	"historical_events",
	"geographic_points",
	"gallery_images",
	"quiz_questions",
	"interesting_facts",
}

// StoredRows returns the number of rows across all catalog tables.
func StoredRows(ctx context.Context, db *sql.DB) (int, error) {
	var total int
	for _, table := range CatalogTables {
		var n int
		if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
			return 0, fmt.Errorf("count %s: %w", table, err)
		}
		total += n
	}
	return total, nil
}

// Seed writes a dataset into the catalog tables inside one transaction.
// If any catalog table already holds rows the call is a no-op unless
// replace is set. With replace the existing rows are always removed first;
// epochs go together with their events, events first.
func Seed(ctx context.Context, db *sql.DB, dialect Dialect, ds *models.Dataset, replace bool) (SeedResult, error) {
	stored, err := StoredRows(ctx, db)
	if err != nil {
		return SeedResult{}, fmt.Errorf("seed check: %w", err)
	}

	if stored > 0 && !replace {
		slog.Info("database already seeded, skipping", "rows", stored)
		return SeedResult{Skipped: true}, nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return SeedResult{}, fmt.Errorf("seed begin: %w", err)
	}
	defer tx.Rollback()

	s := seeder{ctx: ctx, tx: tx, dialect: dialect}

	if replace {
		s.clear()
	}
	s.insert(ds)
	if s.err != nil {
		return SeedResult{}, s.err
	}

	if err := tx.Commit(); err != nil {
		return SeedResult{}, fmt.Errorf("seed commit: %w", err)
	}

	res := SeedResult{Replaced: stored > 0, Counts: ds.Counts()}
	slog.Info("database seeded", "replaced", res.Replaced, "counts", res.Counts)
	return res, nil
}

// seeder carries the first error through a sequence of statements.
type seeder struct {
	ctx     context.Context
	tx      *sql.Tx
	dialect Dialect
	err     error
}

func (s *seeder) exec(what, query string, args ...any) {
	if s.err != nil {
		return
	}
	if _, err := s.tx.ExecContext(s.ctx, s.dialect.Rebind(query), args...); err != nil {
		s.err = fmt.Errorf("seed %s: %w", what, err)
	}
}

func (s *seeder) clear() {
	s.exec("clear events", "DELETE FROM historical_events")
	s.exec("clear epochs", "DELETE FROM epochs")
	s.exec("clear geo points", "DELETE FROM geographic_points")
	s.exec("clear gallery", "DELETE FROM gallery_images")
	s.exec("clear quiz", "DELETE FROM quiz_questions")
	s.exec("clear facts", "DELETE FROM interesting_facts")
}

func (s *seeder) insert(ds *models.Dataset) {
	for _, e := range ds.Epochs {
		s.exec("insert epoch", `
			INSERT INTO epochs (id, name, start_year, end_year, description, color, order_index)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			e.ID, e.Name, e.StartYear, e.EndYear, e.Description, e.Color, e.OrderIndex)
	}

	for _, ev := range ds.Events {
		s.exec("insert event", `
			INSERT INTO historical_events (id, epoch_id, title, year, date_description, description,
				short_description, image_url, image_caption, importance, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			ev.ID, ev.EpochID, ev.Title, ev.Year, ev.DateDescription, ev.Description,
			ev.ShortDescription, ev.ImageURL, ev.ImageCaption, ev.Importance, s.dialect.TimeArg(ev.CreatedAt))
	}

	for _, p := range ds.Points {
		s.exec("insert geo point", `
			INSERT INTO geographic_points (id, name, point_type, latitude, longitude, description,
				short_description, founding_year, population, image_url, icon, color)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			p.ID, p.Name, string(p.Type), p.Latitude, p.Longitude, p.Description,
			p.ShortDescription, p.FoundingYear, p.Population, p.ImageURL, p.Icon, p.Color)
	}

	for _, g := range ds.Images {
		s.exec("insert gallery image", `
			INSERT INTO gallery_images (id, title, description, image_url, category, photographer,
				year_taken, location, order_index, is_featured)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			g.ID, g.Title, g.Description, g.ImageURL, g.Category, g.Photographer,
			g.YearTaken, g.Location, g.OrderIndex, g.IsFeatured)
	}

	for _, q := range ds.Questions {
		s.exec("insert question", `
			INSERT INTO quiz_questions (id, question, option_a, option_b, option_c, option_d,
				correct_answer, explanation, difficulty, category, points)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			q.ID, q.Question, q.OptionA, q.OptionB, q.OptionC, q.OptionD,
			string(q.CorrectAnswer), q.Explanation, string(q.Difficulty), q.Category, q.Points)
	}

	for _, f := range ds.Facts {
		s.exec("insert fact", `
			INSERT INTO interesting_facts (id, title, fact, category, icon, order_index)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			f.ID, f.Title, f.Text, f.Category, f.Icon, f.OrderIndex)
	}
}
