package catalog

import (
	"yenisei/internal/models"
	"yenisei/internal/query"
)

// GeoPoints lists points of the given type (all types when empty) in store
// order, one page at a time.
func (s *Service) GeoPoints(pointType string, page query.Page) []models.GeoPoint {
	points := query.Filter(s.snap().GeoPoints(),
		query.EqualString(func(p models.GeoPoint) models.PointType { return p.Type }, trim(pointType)),
	)
	return query.Paginate(points, page)
}

// GeoPoint returns one point.
func (s *Service) GeoPoint(id int64) (models.GeoPoint, error) {
	p, ok := s.snap().GeoPoint(id)
	if !ok {
		return models.GeoPoint{}, notFound(KindGeoPoint, id)
	}
	return p, nil
}

// MajorCities returns up to MajorCitiesLimit cities with a known population,
// largest first. Points of other types are never included, whatever their
// population.
func (s *Service) MajorCities() []models.GeoPoint {
	cities := query.Filter(s.snap().GeoPoints(),
		func(p models.GeoPoint) bool { return p.IsCity() && p.HasPopulation() },
	)
	return query.TopK(cities, MajorCitiesLimit, func(p models.GeoPoint) int { return *p.Population }, query.Descending)
}

// Landmarks returns every point of type landmark.
func (s *Service) Landmarks() []models.GeoPoint {
	return query.Filter(s.snap().GeoPoints(),
		query.Equal(func(p models.GeoPoint) models.PointType { return p.Type }, models.PointTypeLandmark),
	)
}

// SearchGeoPoints matches text as a plain substring of a point's name or
// description. An empty text matches every point.
func (s *Service) SearchGeoPoints(text string) []models.GeoPoint {
	return query.Filter(s.snap().GeoPoints(),
		query.Contains(text,
			func(p models.GeoPoint) string { return p.Name },
			func(p models.GeoPoint) string { return p.Description },
		),
	)
}
