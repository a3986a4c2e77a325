package models

import (
	"encoding/json"
	"fmt"
)

// DaySchedule is one calendar day of the training plan. Date is "DD-MM"
// without a year. Every field must be present in the document.
type DaySchedule struct {
	Day      string `json:"Day"`
	Date     string `json:"Date"`
	Throwing string `json:"Throwing"`
	Lifting  string `json:"Lifting"`
	Game     string `json:"Game"`
}

type Week struct {
	Label    string        `json:"Week"`
	Schedule []DaySchedule `json:"Schedule"`
}

// Schedule is the whole training calendar in document order.
type Schedule struct {
	Weeks []Week `json:"Weeks"`
}

// MissingFieldError reports a required schedule key absent from the document
// or set to null.
type MissingFieldError struct {
	Type  string
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing field %q", e.Type, e.Field)
}

func (d *DaySchedule) UnmarshalJSON(data []byte) error {
	var raw struct {
		Day      *string `json:"Day"`
		Date     *string `json:"Date"`
		Throwing *string `json:"Throwing"`
		Lifting  *string `json:"Lifting"`
		Game     *string `json:"Game"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	fields := []struct {
		name  string
		value *string
	}{
		{"Day", raw.Day},
		{"Date", raw.Date},
		{"Throwing", raw.Throwing},
		{"Lifting", raw.Lifting},
		{"Game", raw.Game},
	}
	for _, f := range fields {
		if f.value == nil {
			return &MissingFieldError{Type: "DaySchedule", Field: f.name}
		}
	}

	*d = DaySchedule{
		Day:      *raw.Day,
		Date:     *raw.Date,
		Throwing: *raw.Throwing,
		Lifting:  *raw.Lifting,
		Game:     *raw.Game,
	}
	return nil
}

func (w *Week) UnmarshalJSON(data []byte) error {
	var raw struct {
		Label    *string        `json:"Week"`
		Schedule *[]DaySchedule `json:"Schedule"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Label == nil {
		return &MissingFieldError{Type: "Week", Field: "Week"}
	}
	if raw.Schedule == nil {
		return &MissingFieldError{Type: "Week", Field: "Schedule"}
	}

	*w = Week{Label: *raw.Label, Schedule: *raw.Schedule}
	return nil
}

func (s *Schedule) UnmarshalJSON(data []byte) error {
	var raw struct {
		Weeks *[]Week `json:"Weeks"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Weeks == nil {
		return &MissingFieldError{Type: "Schedule", Field: "Weeks"}
	}

	s.Weeks = *raw.Weeks
	return nil
}
