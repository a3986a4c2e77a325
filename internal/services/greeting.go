package services

import "time"

// GreetingService picks the greeting line shown on the idle screen.
type GreetingService struct {
	name string
}

func NewGreetingService(name string) *GreetingService {
	return &GreetingService{name: name}
}

// Greeting returns the greeting for now's hour: morning from 05:00, welcome
// home from 12:00, good night from 19:00 until 05:00.
func (g *GreetingService) Greeting(now time.Time) string {
	var line string
	switch h := now.Hour(); {
	case h >= 5 && h < 12:
		line = "Good Morning"
	case h >= 12 && h < 19:
		line = "Welcome home"
	default:
		line = "Good night"
	}

	if g.name == "" {
		return line
	}
	return line + ", " + g.name
}
