package slug

import "testing"

func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple two words", "Hello World", "hello-world"},
		{"title with year", "Yenisei 2026", "yenisei-2026"},
		{"punctuation marks", "Hello, World! How's it going?", "hello-world-hows-it-going"},
		{"russian city", "Красноярск", "krasnoyarsk"},
		{"russian with abbreviation", "Красноярская ГЭС, 1972", "krasnoyarskaya-ges-1972"},
		{"soft and hard signs", "Подъём Дивногорья", "podem-divnogorya"},
		{"multi-letter sounds", "Щучье ущелье", "shchuche-ushchele"},
		{"yo", "Ёлки", "elki"},
		{"underscores become hyphens", "river_bank__view", "river-bank-view"},
		{"mixed scripts", "Енисей river", "enisey-river"},
		{"collapses separators", "a - - b", "a-b"},
		{"trims hyphens", "--start and end--", "start-and-end"},
		{"other scripts dropped", "河 Енисей", "enisey"},
		{"empty", "", ""},
		{"only punctuation", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Generate(tt.input); got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTransliterate(t *testing.T) {
	if got := Transliterate("Саяны-2"); got != "sayany-2" {
		t.Errorf("Transliterate = %q", got)
	}
}
