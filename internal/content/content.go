// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package content loads catalog seed data from YAML documents. Events are
// nested under the epoch that owns them, so ownership is structural in the
// source files. Identities are assigned in document order, which makes every
// storage engine agree on them for the same input.
package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"yenisei/internal/models"
)

// FilePattern selects content files inside a content directory.
const FilePattern = "**/*.{yaml,yml}"

//go:embed data/yenisei.yaml
var embedded embed.FS

// ErrNoContent is returned when a content directory holds no YAML files.
var ErrNoContent = errors.New("no content files found")

type document struct {
	Epochs    []epochDoc    `yaml:"epochs"`
	GeoPoints []pointDoc    `yaml:"geo_points"`
	Gallery   []imageDoc    `yaml:"gallery"`
	Quiz      []questionDoc `yaml:"quiz"`
	Facts     []factDoc     `yaml:"facts"`
}

type epochDoc struct {
	Name        string     `yaml:"name"`
	StartYear   int        `yaml:"start_year"`
	EndYear     int        `yaml:"end_year"`
	Description string     `yaml:"description"`
	Color       string     `yaml:"color"`
	OrderIndex  int        `yaml:"order_index"`
	Events      []eventDoc `yaml:"events"`
}

type eventDoc struct {
	Title            string `yaml:"title"`
	Year             int    `yaml:"year"`
	DateDescription  string `yaml:"date_description"`
	ShortDescription string `yaml:"short_description"`
	Description      string `yaml:"description"`
	ImageURL         string `yaml:"image_url"`
	ImageCaption     string `yaml:"image_caption"`
	Importance       *int   `yaml:"importance"`
}

type pointDoc struct {
	Name             string  `yaml:"name"`
	Type             string  `yaml:"type"`
	Latitude         float64 `yaml:"latitude"`
	Longitude        float64 `yaml:"longitude"`
	ShortDescription string  `yaml:"short_description"`
	Description      string  `yaml:"description"`
	FoundingYear     *int    `yaml:"founding_year"`
	Population       *int    `yaml:"population"`
	ImageURL         string  `yaml:"image_url"`
	Icon             string  `yaml:"icon"`
	Color            string  `yaml:"color"`
}

type imageDoc struct {
	Title        string  `yaml:"title"`
	Description  string  `yaml:"description"`
	ImageURL     string  `yaml:"image_url"`
	Category     string  `yaml:"category"`
	Photographer *string `yaml:"photographer"`
	YearTaken    *int    `yaml:"year_taken"`
	Location     string  `yaml:"location"`
	OrderIndex   int     `yaml:"order_index"`
	IsFeatured   bool    `yaml:"is_featured"`
}

type questionDoc struct {
	Question      string `yaml:"question"`
	OptionA       string `yaml:"option_a"`
	OptionB       string `yaml:"option_b"`
	OptionC       string `yaml:"option_c"`
	OptionD       string `yaml:"option_d"`
	CorrectAnswer string `yaml:"correct_answer"`
	Explanation   string `yaml:"explanation"`
	Difficulty    string `yaml:"difficulty"`
	Category      string `yaml:"category"`
	Points        *int   `yaml:"points"`
}

type factDoc struct {
	Title      string `yaml:"title"`
	Fact       string `yaml:"fact"`
	Category   string `yaml:"category"`
	Icon       string `yaml:"icon"`
	OrderIndex int    `yaml:"order_index"`
}

// builder accumulates documents into a Dataset, assigning identities.
type builder struct {
	ds  models.Dataset
	now time.Time
}

func newBuilder() *builder {
	return &builder{now: time.Now().UTC()}
}

func (b *builder) add(doc *document) {
	for _, e := range doc.Epochs {
		epoch := models.Epoch{
			ID:          int64(len(b.ds.Epochs) + 1),
			Name:        strings.TrimSpace(e.Name),
			StartYear:   e.StartYear,
			EndYear:     e.EndYear,
			Description: e.Description,
			Color:       orDefault(e.Color, models.DefaultEpochColor),
			OrderIndex:  e.OrderIndex,
		}
		b.ds.Epochs = append(b.ds.Epochs, epoch)

		for _, ev := range e.Events {
			importance := models.DefaultEventImportance
			if ev.Importance != nil {
				importance = *ev.Importance
			}
			b.ds.Events = append(b.ds.Events, models.Event{
				ID:               int64(len(b.ds.Events) + 1),
				EpochID:          epoch.ID,
				Title:            strings.TrimSpace(ev.Title),
				Year:             ev.Year,
				DateDescription:  ev.DateDescription,
				Description:      ev.Description,
				ShortDescription: ev.ShortDescription,
				ImageURL:         ev.ImageURL,
				ImageCaption:     ev.ImageCaption,
				Importance:       importance,
				CreatedAt:        b.now,
			})
			if !epoch.Contains(ev.Year) {
				slog.Warn("event year outside its epoch",
					"event", strings.TrimSpace(ev.Title), "year", ev.Year,
					"epoch", epoch.Name, "start_year", epoch.StartYear, "end_year", epoch.EndYear)
			}
		}
	}

	for _, p := range doc.GeoPoints {
		if t := models.NormalizePointType(p.Type); !t.Known() {
			slog.Warn("unknown point type, serving as is", "point", strings.TrimSpace(p.Name), "type", t, "label", t.Label())
		}
		b.ds.Points = append(b.ds.Points, models.GeoPoint{
			ID:               int64(len(b.ds.Points) + 1),
			Name:             strings.TrimSpace(p.Name),
			Type:             models.NormalizePointType(p.Type),
			Latitude:         p.Latitude,
			Longitude:        p.Longitude,
			Description:      p.Description,
			ShortDescription: p.ShortDescription,
			FoundingYear:     p.FoundingYear,
			Population:       p.Population,
			ImageURL:         p.ImageURL,
			Icon:             orDefault(p.Icon, models.DefaultPointIcon),
			Color:            orDefault(p.Color, models.DefaultPointColor),
		})
	}

	for _, g := range doc.Gallery {
		b.ds.Images = append(b.ds.Images, models.GalleryImage{
			ID:           int64(len(b.ds.Images) + 1),
			Title:        strings.TrimSpace(g.Title),
			Description:  g.Description,
			ImageURL:     g.ImageURL,
			Category:     g.Category,
			Photographer: g.Photographer,
			YearTaken:    g.YearTaken,
			Location:     g.Location,
			OrderIndex:   g.OrderIndex,
			IsFeatured:   g.IsFeatured,
		})
	}

	for _, q := range doc.Quiz {
		points := models.DefaultPoints
		if q.Points != nil {
			points = *q.Points
		}
		b.ds.Questions = append(b.ds.Questions, models.QuizQuestion{
			ID:            int64(len(b.ds.Questions) + 1),
			Question:      q.Question,
			OptionA:       q.OptionA,
			OptionB:       q.OptionB,
			OptionC:       q.OptionC,
			OptionD:       q.OptionD,
			CorrectAnswer: models.AnswerLetter(strings.ToUpper(strings.TrimSpace(q.CorrectAnswer))),
			Explanation:   q.Explanation,
			Difficulty:    models.Difficulty(orDefault(strings.TrimSpace(q.Difficulty), string(models.DefaultDifficulty))),
			Category:      strings.TrimSpace(q.Category),
			Points:        points,
		})
		b.checkQuestion(&b.ds.Questions[len(b.ds.Questions)-1])
	}

	for _, f := range doc.Facts {
		b.ds.Facts = append(b.ds.Facts, models.Fact{
			ID:         int64(len(b.ds.Facts) + 1),
			Title:      strings.TrimSpace(f.Title),
			Text:       f.Fact,
			Category:   f.Category,
			Icon:       orDefault(f.Icon, models.DefaultFactIcon),
			OrderIndex: f.OrderIndex,
		})
	}
}

// checkQuestion logs questions that are served but look wrong to an editor.
func (b *builder) checkQuestion(q *models.QuizQuestion) {
	if !q.Difficulty.Known() {
		slog.Warn("unknown quiz difficulty, serving as is", "question", q.ID, "difficulty", q.Difficulty, "label", q.Difficulty.Label())
	}
	if strings.TrimSpace(q.Option(q.CorrectAnswer)) == "" {
		slog.Warn("quiz answer key points at an empty option", "question", q.ID, "answer", q.CorrectAnswer)
	}
}

func (b *builder) build() (*models.Dataset, error) {
	ds := b.ds
	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("validate content: %w", err)
	}
	return &ds, nil
}

func decode(r io.Reader, name string) (*document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return &doc, nil
}

// Parse builds a Dataset from a single YAML document.
func Parse(data []byte) (*models.Dataset, error) {
	doc, err := decode(bytes.NewReader(data), "content")
	if err != nil {
		return nil, err
	}
	b := newBuilder()
	b.add(doc)
	return b.build()
}

// LoadFile builds a Dataset from one YAML file.
func LoadFile(path string) (*models.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}
	doc, err := decode(bytes.NewReader(data), path)
	if err != nil {
		return nil, err
	}
	b := newBuilder()
	b.add(doc)
	return b.build()
}

// LoadDir merges every content file under dir, in lexical path order, into a
// single Dataset.
func LoadDir(dir string) (*models.Dataset, error) {
	matches, err := doublestar.Glob(os.DirFS(dir), FilePattern)
	if err != nil {
		return nil, fmt.Errorf("glob content dir: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoContent)
	}
	sort.Strings(matches)

	b := newBuilder()
	for _, m := range matches {
		path := filepath.Join(dir, filepath.FromSlash(m))
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open content file: %w", err)
		}
		doc, err := decode(f, path)
		f.Close()
		if err != nil {
			return nil, err
		}
		b.add(doc)
	}

	ds, err := b.build()
	if err != nil {
		return nil, err
	}
	slog.Info("content loaded", "dir", dir, "files", len(matches), "epochs", len(ds.Epochs), "events", len(ds.Events))
	return ds, nil
}

// Default returns the dataset compiled into the binary.
func Default() (*models.Dataset, error) {
	data, err := embedded.ReadFile("data/yenisei.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded content: %w", err)
	}
	return Parse(data)
}

// Load reads content from dir, or the embedded dataset when dir is empty.
func Load(dir string) (*models.Dataset, error) {
	if dir == "" {
		return Default()
	}
	return LoadDir(dir)
}

// IsContentFile reports whether a path names a content file.
func IsContentFile(path string) bool {
	ok, _ := doublestar.Match("*.{yaml,yml}", filepath.Base(path))
	return ok
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
