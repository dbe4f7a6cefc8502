// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "strings"

// PointType categorizes a geographic point. The set is open: seeded content
// may carry types the API does not know about, and those are still served.
type PointType string

const (
	PointTypeCity       PointType = "city"
	PointTypeLandmark   PointType = "landmark"
	PointTypeNature     PointType = "nature"
	PointTypeHistorical PointType = "historical"

	// PointTypeUnknown is the label used when a type is not one of the above.
	PointTypeUnknown PointType = "unknown"
)

// Known returns true for the four point types the map renders natively.
func (t PointType) Known() bool {
	switch t {
	case PointTypeCity, PointTypeLandmark, PointTypeNature, PointTypeHistorical:
		return true
	}
	return false
}

// Label returns the type itself when known and PointTypeUnknown otherwise.
func (t PointType) Label() PointType {
	if t.Known() {
		return t
	}
	return PointTypeUnknown
}

// NormalizePointType trims and lower-cases a raw type string. It does not
// reject unknown values.
func NormalizePointType(s string) PointType {
	return PointType(strings.ToLower(strings.TrimSpace(s)))
}

// Default marker styling for points seeded without one.
const (
	DefaultPointIcon  = "marker"
	DefaultPointColor = "#EF4444"
)

// GeoPoint is a place on the river map.
type GeoPoint struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Type             PointType `json:"type"`
	Latitude         float64   `json:"latitude"`
	Longitude        float64   `json:"longitude"`
	Description      string    `json:"description"`
	ShortDescription string    `json:"short_description"`
	FoundingYear     *int      `json:"founding_year"`
	Population       *int      `json:"population"`
	ImageURL         string    `json:"image_url"`
	Icon             string    `json:"icon"`
	Color            string    `json:"color"`
}

// IsCity returns true if the point is a city.
func (p *GeoPoint) IsCity() bool {
	return p.Type == PointTypeCity
}

// HasPopulation returns true if a population figure was recorded.
func (p *GeoPoint) HasPopulation() bool {
	return p.Population != nil
}
