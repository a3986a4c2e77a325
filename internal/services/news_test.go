package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"training-dashboard/internal/models"
)

func TestNewsServicePlaceholders(t *testing.T) {
	s := NewNewsService(nil)

	headlines := s.Headlines()
	assert.Len(t, headlines, 2)
	assert.Equal(t, "Breaking News 1", headlines[0].Title)

	headlines[0].Title = "changed"
	assert.Equal(t, "Breaking News 1", s.Headlines()[0].Title)
	assert.Equal(t, "Breaking News 1", NewNewsService(nil).Headlines()[0].Title)
}

func TestNewsServiceReturnsCopy(t *testing.T) {
	s := NewNewsService([]models.Headline{{Title: "Local", Description: "Story"}})

	first := s.Headlines()
	first[0].Title = "changed"

	assert.Equal(t, "Local", s.Headlines()[0].Title)
}
