package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2024, 3, 18, hour, minute, 0, 0, time.Local)
}

func TestGreetingBoundaries(t *testing.T) {
	g := NewGreetingService("Jackson")

	tests := []struct {
		now  time.Time
		want string
	}{
		{at(4, 59), "Good night, Jackson"},
		{at(5, 0), "Good Morning, Jackson"},
		{at(11, 59), "Good Morning, Jackson"},
		{at(12, 0), "Welcome home, Jackson"},
		{at(18, 59), "Welcome home, Jackson"},
		{at(19, 0), "Good night, Jackson"},
		{at(0, 0), "Good night, Jackson"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, g.Greeting(tt.now), tt.now.Format("15:04"))
	}
}

func TestGreetingWithoutName(t *testing.T) {
	assert.Equal(t, "Good Morning", NewGreetingService("").Greeting(at(8, 0)))
}
