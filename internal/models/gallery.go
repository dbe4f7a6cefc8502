// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// GalleryImage is a photo in the gallery. Featured images are highlighted on
// the home page.
type GalleryImage struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	ImageURL     string  `json:"image_url"`
	Category     string  `json:"category"`
	Photographer *string `json:"photographer"`
	YearTaken    *int    `json:"year_taken"`
	Location     string  `json:"location"`
	OrderIndex   int     `json:"order_index"`
	IsFeatured   bool    `json:"is_featured"`
}
