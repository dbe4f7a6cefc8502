// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"context"
	"database/sql"
	"slices"
	"testing"

	"yenisei/internal/content"
	"yenisei/internal/models"
)

func openSeeded(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := Migrate(db, SQLite); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	return db
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

func TestSeedSQLite(t *testing.T) {
	db := openSeeded(t)
	ctx := context.Background()

	ds, err := content.Default()
	if err != nil {
		t.Fatalf("content.Default: %v", err)
	}

	res, err := Seed(ctx, db, SQLite, ds, false)
	if err != nil {
		t.Fatalf("first Seed: %v", err)
	}
	if res.Skipped || res.Replaced {
		t.Errorf("first Seed: got %+v, want a fresh insert", res)
	}

	want := map[string]int{
		"epochs":            len(ds.Epochs),
		"historical_events": len(ds.Events),
		"geographic_points": len(ds.Points),
		"gallery_images":    len(ds.Images),
		"quiz_questions":    len(ds.Questions),
		"interesting_facts": len(ds.Facts),
	}
	for table, n := range want {
		if got := countRows(t, db, table); got != n {
			t.Errorf("%s: got %d rows, want %d", table, got, n)
		}
	}

	// A second plain seed must leave the data alone.
	res, err = Seed(ctx, db, SQLite, ds, false)
	if err != nil {
		t.Fatalf("second Seed: %v", err)
	}
	if !res.Skipped {
		t.Error("second Seed should be skipped")
	}
	if got := countRows(t, db, "epochs"); got != len(ds.Epochs) {
		t.Errorf("epochs after skip: got %d, want %d", got, len(ds.Epochs))
	}
}

func TestSeedReplace(t *testing.T) {
	db := openSeeded(t)
	ctx := context.Background()

	ds, err := content.Default()
	if err != nil {
		t.Fatalf("content.Default: %v", err)
	}
	if _, err := Seed(ctx, db, SQLite, ds, false); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	// Content without the first epoch and its events.
	smaller := *ds
	smaller.Epochs = slices.DeleteFunc(slices.Clone(ds.Epochs), func(e models.Epoch) bool { return e.ID == 1 })
	smaller.Events = slices.DeleteFunc(slices.Clone(ds.Events), func(ev models.Event) bool { return ev.EpochID == 1 })

	res, err := Seed(ctx, db, SQLite, &smaller, true)
	if err != nil {
		t.Fatalf("replace Seed: %v", err)
	}
	if !res.Replaced {
		t.Error("expected Replaced")
	}

	if got := countRows(t, db, "epochs"); got != len(ds.Epochs)-1 {
		t.Errorf("epochs: got %d, want %d", got, len(ds.Epochs)-1)
	}
	var orphans int
	if err := db.QueryRow("SELECT COUNT(*) FROM historical_events WHERE epoch_id = 1").Scan(&orphans); err != nil {
		t.Fatalf("count orphans: %v", err)
	}
	if orphans != 0 {
		t.Errorf("events of deleted epoch remain: %d", orphans)
	}
}

func TestSeedRollsBackOnError(t *testing.T) {
	db := openSeeded(t)
	ctx := context.Background()

	ds, err := content.Default()
	if err != nil {
		t.Fatalf("content.Default: %v", err)
	}
	broken := *ds
	broken.Events = append(broken.Events[:0:0], ds.Events...)
	broken.Events[0].Importance = 99

	if _, err := Seed(ctx, db, SQLite, &broken, false); err == nil {
		t.Fatal("expected Seed to fail on check constraint")
	}
	if got := countRows(t, db, "epochs"); got != 0 {
		t.Errorf("epochs after rollback: got %d, want 0", got)
	}
}

func TestSeedPostgres(t *testing.T) {
	db, err := Connect(testDSN())
	if err != nil {
		t.Skipf("skipping: DB not available: %v", err)
	}
	defer db.Close()

	if err := Migrate(db, Postgres); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	ds, err := content.Default()
	if err != nil {
		t.Fatalf("content.Default: %v", err)
	}
	if _, err := Seed(context.Background(), db, Postgres, ds, true); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if got := countRows(t, db, "historical_events"); got != len(ds.Events) {
		t.Errorf("events: got %d, want %d", got, len(ds.Events))
	}
}

func TestSeedWithoutEpochs(t *testing.T) {
	db := openSeeded(t)
	ctx := context.Background()

	ds := &models.Dataset{Facts: []models.Fact{{ID: 1, Title: "Исток", Text: "Енисей начинается в Туве.", Category: "geography"}}}

	res, err := Seed(ctx, db, SQLite, ds, false)
	if err != nil {
		t.Fatalf("first Seed: %v", err)
	}
	if res.Skipped || res.Replaced {
		t.Errorf("first Seed: got %+v, want a fresh insert", res)
	}

	// Facts alone count as seeded content.
	res, err = Seed(ctx, db, SQLite, ds, false)
	if err != nil {
		t.Fatalf("second Seed: %v", err)
	}
	if !res.Skipped {
		t.Error("second Seed should be skipped")
	}

	res, err = Seed(ctx, db, SQLite, ds, true)
	if err != nil {
		t.Fatalf("replace Seed: %v", err)
	}
	if !res.Replaced {
		t.Error("expected Replaced")
	}
	if got := countRows(t, db, "interesting_facts"); got != 1 {
		t.Errorf("facts: got %d rows, want 1", got)
	}
}

func TestStoredRows(t *testing.T) {
	db := openSeeded(t)
	ctx := context.Background()

	n, err := StoredRows(ctx, db)
	if err != nil {
		t.Fatalf("StoredRows: %v", err)
	}
	if n != 0 {
		t.Errorf("empty catalog: got %d rows, want 0", n)
	}

	ds := &models.Dataset{Points: []models.GeoPoint{{ID: 1, Name: "Кызыл", Type: models.PointTypeCity}}}
	if _, err := Seed(ctx, db, SQLite, ds, false); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if n, _ = StoredRows(ctx, db); n != 1 {
		t.Errorf("after seed: got %d rows, want 1", n)
	}
}
