package models

// DefaultFactIcon is used for facts seeded without an icon.
const DefaultFactIcon = "lightbulb"

// Fact is a short "did you know" item.
type Fact struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Text       string `json:"fact"`
	Category   string `json:"category"`
	Icon       string `json:"icon"`
	OrderIndex int    `json:"order_index"`
}
