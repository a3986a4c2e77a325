package services

import "training-dashboard/internal/models"

var placeholderHeadlines = []models.Headline{
	{Title: "Breaking News 1", Description: "Description of breaking news 1."},
	{Title: "Breaking News 2", Description: "Description of breaking news 2."},
}

// NewsService serves the configured headlines.
type NewsService struct {
	headlines []models.Headline
}

func NewNewsService(headlines []models.Headline) *NewsService {
	if len(headlines) == 0 {
		headlines = placeholderHeadlines
	}
	return &NewsService{headlines: headlines}
}

// Headlines returns a copy of the headline list.
func (s *NewsService) Headlines() []models.Headline {
	out := make([]models.Headline, len(s.headlines))
	copy(out, s.headlines)
	return out
}
