package store

import (
	"context"
	"database/sql"
	"fmt"

	"yenisei/internal/database"
	"yenisei/internal/models"
)

// LoadSQL reads the six catalog tables into a Dataset. The queries carry no
// parameters, so they run unchanged on every supported dialect.
func LoadSQL(ctx context.Context, db *sql.DB) (*models.Dataset, error) {
	var ds models.Dataset
	var err error

	if ds.Epochs, err = queryAll(ctx, db, "epochs", `
		SELECT id, name, start_year, end_year, description, color, order_index
		FROM epochs ORDER BY id`,
		func(rows *sql.Rows) (models.Epoch, error) {
			var e models.Epoch
			err := rows.Scan(&e.ID, &e.Name, &e.StartYear, &e.EndYear, &e.Description, &e.Color, &e.OrderIndex)
			return e, err
		}); err != nil {
		return nil, err
	}

	if ds.Events, err = queryAll(ctx, db, "events", `
		SELECT id, epoch_id, title, year, date_description, description, short_description,
		       image_url, image_caption, importance, created_at
		FROM historical_events ORDER BY id`,
		func(rows *sql.Rows) (models.Event, error) {
			var ev models.Event
			var created database.Time
			err := rows.Scan(&ev.ID, &ev.EpochID, &ev.Title, &ev.Year, &ev.DateDescription, &ev.Description,
				&ev.ShortDescription, &ev.ImageURL, &ev.ImageCaption, &ev.Importance, &created)
			ev.CreatedAt = created.Time
			return ev, err
		}); err != nil {
		return nil, err
	}

	if ds.Points, err = queryAll(ctx, db, "geo points", `
		SELECT id, name, point_type, latitude, longitude, description, short_description,
		       founding_year, population, image_url, icon, color
		FROM geographic_points ORDER BY id`,
		func(rows *sql.Rows) (models.GeoPoint, error) {
			var p models.GeoPoint
			var founded, population sql.NullInt64
			err := rows.Scan(&p.ID, &p.Name, &p.Type, &p.Latitude, &p.Longitude, &p.Description, &p.ShortDescription,
				&founded, &population, &p.ImageURL, &p.Icon, &p.Color)
			p.FoundingYear = intPtr(founded)
			p.Population = intPtr(population)
			return p, err
		}); err != nil {
		return nil, err
	}

	if ds.Images, err = queryAll(ctx, db, "gallery", `
		SELECT id, title, description, image_url, category, photographer, year_taken,
		       location, order_index, is_featured
		FROM gallery_images ORDER BY id`,
		func(rows *sql.Rows) (models.GalleryImage, error) {
			var g models.GalleryImage
			var photographer sql.NullString
			var year sql.NullInt64
			err := rows.Scan(&g.ID, &g.Title, &g.Description, &g.ImageURL, &g.Category, &photographer, &year,
				&g.Location, &g.OrderIndex, &g.IsFeatured)
			if photographer.Valid {
				g.Photographer = &photographer.String
			}
			g.YearTaken = intPtr(year)
			return g, err
		}); err != nil {
		return nil, err
	}

	if ds.Questions, err = queryAll(ctx, db, "quiz", `
		SELECT id, question, option_a, option_b, option_c, option_d, correct_answer,
		       explanation, difficulty, category, points
		FROM quiz_questions ORDER BY id`,
		func(rows *sql.Rows) (models.QuizQuestion, error) {
			var q models.QuizQuestion
			err := rows.Scan(&q.ID, &q.Question, &q.OptionA, &q.OptionB, &q.OptionC, &q.OptionD, &q.CorrectAnswer,
				&q.Explanation, &q.Difficulty, &q.Category, &q.Points)
			return q, err
		}); err != nil {
		return nil, err
	}

	if ds.Facts, err = queryAll(ctx, db, "facts", `
		SELECT id, title, fact, category, icon, order_index
		FROM interesting_facts ORDER BY id`,
		func(rows *sql.Rows) (models.Fact, error) {
			var f models.Fact
			err := rows.Scan(&f.ID, &f.Title, &f.Text, &f.Category, &f.Icon, &f.OrderIndex)
			return f, err
		}); err != nil {
		return nil, err
	}

	return &ds, nil
}

func queryAll[T any](ctx context.Context, db *sql.DB, what, query string, scan func(*sql.Rows) (T, error)) ([]T, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", what, err)
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		it, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", what, err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load %s: %w", what, err)
	}
	return items, nil
}

func intPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}
