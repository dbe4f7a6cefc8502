package catalog

import (
	"yenisei/internal/models"
	"yenisei/internal/query"
)

// Gallery lists images by category and featured flag, ordered by order
// index. A nil featured means both.
func (s *Service) Gallery(category string, featured *bool) []models.GalleryImage {
	images := query.Filter(s.snap().GalleryImages(),
		query.EqualString(func(g models.GalleryImage) string { return g.Category }, trim(category)),
		query.EqualPtr(func(g models.GalleryImage) bool { return g.IsFeatured }, featured),
	)
	return query.Sorted(images, query.By(func(g models.GalleryImage) int { return g.OrderIndex }, query.Ascending))
}

// GalleryImage returns one image.
func (s *Service) GalleryImage(id int64) (models.GalleryImage, error) {
	g, ok := s.snap().GalleryImage(id)
	if !ok {
		return models.GalleryImage{}, notFound(KindImage, id)
	}
	return g, nil
}

// Facts lists facts of a category (all when empty) by order index.
func (s *Service) Facts(category string) []models.Fact {
	facts := query.Filter(s.snap().Facts(),
		query.EqualString(func(f models.Fact) string { return f.Category }, trim(category)),
	)
	return query.Sorted(facts, query.By(func(f models.Fact) int { return f.OrderIndex }, query.Ascending))
}

// RandomFact picks one fact uniformly. It fails with a NotFoundError when the
// catalog holds no facts.
func (s *Service) RandomFact() (models.Fact, error) {
	f, ok := query.One(s.sampler, s.snap().Facts())
	if !ok {
		return models.Fact{}, notFound(KindFact, 0)
	}
	return f, nil
}
