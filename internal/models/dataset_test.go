package models

import (
	"strings"
	"testing"
)

func validDataset() *Dataset {
	return &Dataset{
		Epochs: []Epoch{
			{ID: 1, Name: "Палеолит", StartYear: -30000, EndYear: 1500, OrderIndex: 1},
			{ID: 2, Name: "Первопроходцы", StartYear: 1600, EndYear: 1750, OrderIndex: 2},
		},
		Events: []Event{
			{ID: 1, EpochID: 1, Title: "Афонтова Гора", Year: -20000, Importance: 9},
			{ID: 2, EpochID: 2, Title: "Основание Енисейска", Year: 1619, Importance: 10},
			{ID: 3, EpochID: 2, Title: "Красноярский острог", Year: 1628, Importance: 10},
		},
		Questions: []QuizQuestion{
			{ID: 1, Question: "Куда впадает Енисей?", CorrectAnswer: AnswerA, Points: 10},
		},
	}
}

func TestDatasetValidate(t *testing.T) {
	t.Run("valid dataset passes", func(t *testing.T) {
		if err := validDataset().Validate(); err != nil {
			t.Fatalf("Validate: %v", err)
		}
	})

	t.Run("dangling epoch reference", func(t *testing.T) {
		d := validDataset()
		d.Events = append(d.Events, Event{ID: 4, EpochID: 99, Title: "orphan", Importance: 5})
		err := d.Validate()
		if err == nil || !strings.Contains(err.Error(), "epoch 99 does not exist") {
			t.Errorf("Validate error = %v, want dangling epoch error", err)
		}
	})

	t.Run("importance out of range", func(t *testing.T) {
		d := validDataset()
		d.Events[0].Importance = 11
		if err := d.Validate(); err == nil {
			t.Error("expected error for importance 11")
		}
	})

	t.Run("invalid answer key", func(t *testing.T) {
		d := validDataset()
		d.Questions[0].CorrectAnswer = "E"
		if err := d.Validate(); err == nil {
			t.Error("expected error for answer key E")
		}
	})

	t.Run("negative points", func(t *testing.T) {
		d := validDataset()
		d.Questions[0].Points = -1
		if err := d.Validate(); err == nil {
			t.Error("expected error for negative points")
		}
	})

	t.Run("duplicate ids are reported together", func(t *testing.T) {
		d := validDataset()
		d.Epochs = append(d.Epochs, Epoch{ID: 1, Name: "dup"})
		d.Facts = []Fact{{ID: 3}, {ID: 3}}
		err := d.Validate()
		if err == nil {
			t.Fatal("expected error")
		}
		for _, want := range []string{"epoch 1: duplicate id", "fact 3: duplicate id"} {
			if !strings.Contains(err.Error(), want) {
				t.Errorf("error %q does not mention %q", err, want)
			}
		}
	})
}

func TestDatasetUnknownLabels(t *testing.T) {
	d := validDataset()
	d.Points = []GeoPoint{
		{ID: 1, Name: "Кызыл", Type: PointTypeCity},
		{ID: 2, Name: "Плато Путорана", Type: "plateau"},
	}
	d.Questions[0].Difficulty = DifficultyHard
	d.Questions = append(d.Questions, QuizQuestion{ID: 2, CorrectAnswer: AnswerB, Difficulty: "expert"})

	got := d.UnknownLabels()
	if got["point_type"] != 1 || got["difficulty"] != 1 {
		t.Errorf("UnknownLabels() = %v, want one unknown point type and one unknown difficulty", got)
	}
	if err := d.Validate(); err != nil {
		t.Errorf("unknown labels must not fail validation: %v", err)
	}
}

func TestEpochContains(t *testing.T) {
	e := Epoch{StartYear: -30000, EndYear: 1500}
	if !e.Contains(-20000) || !e.Contains(1500) {
		t.Error("expected years inside inclusive range")
	}
	if e.Contains(1619) {
		t.Error("1619 should be outside the range")
	}
}

func TestDatasetCounts(t *testing.T) {
	c := validDataset().Counts()
	if c["epochs"] != 2 || c["events"] != 3 || c["quiz"] != 1 || c["facts"] != 0 {
		t.Errorf("Counts = %v", c)
	}
}
