package models

import "time"

// DisplayMode selects which panel the dashboard shows.
type DisplayMode int

const (
	ModeGreeting DisplayMode = iota
	ModeWorkout
	ModeWeather
	ModeNews
)

func (m DisplayMode) String() string {
	switch m {
	case ModeGreeting:
		return "Greeting"
	case ModeWorkout:
		return "Workout"
	case ModeWeather:
		return "Weather"
	case ModeNews:
		return "News"
	default:
		return "Unknown"
	}
}

// DashboardState is everything the dashboard renders. It is owned by the
// controller and only mutated on the UI goroutine. Zero timestamps mean
// "never".
type DashboardState struct {
	Mode            DisplayMode
	Greeting        string
	Today           *DaySchedule
	SelectedWorkout string
	Weather         *WeatherReport
	Headlines       []Headline

	LastViewChange     time.Time
	LastGreetingUpdate time.Time
	LastRefresh        time.Time
}

// Due reports whether a timer last stamped at last has reached interval.
func Due(last, now time.Time, interval time.Duration) bool {
	return last.IsZero() || now.Sub(last) >= interval
}
