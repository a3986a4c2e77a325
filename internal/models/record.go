package models

import (
	"encoding/json"
)

// ExerciseRecord is the loosely typed exercise entry found in the workouts
// file. Every field is optional and decodes leniently: a value of the wrong
// JSON type is treated as absent rather than as a decode error.
type ExerciseRecord struct {
	Exercise    OptString `json:"exercise"`
	Description OptString `json:"description"`
	Sets        OptCount  `json:"sets"`
	Reps        OptCount  `json:"reps"`
	Each        OptBool   `json:"each"`
	Seconds     OptCount  `json:"seconds"`
	Rest        OptCount  `json:"rest"`
}

// DecodeExerciseRecord decodes raw into a record. It never fails: input that
// is not a JSON object yields an empty record.
func DecodeExerciseRecord(raw json.RawMessage) ExerciseRecord {
	var rec ExerciseRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return ExerciseRecord{}
	}
	return rec
}

// OptString is a string field that may be absent.
type OptString struct {
	Value string
	Valid bool
}

func (s *OptString) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		*s = OptString{}
		return nil
	}
	*s = OptString{Value: v, Valid: true}
	return nil
}

// Or returns the value, or def when absent.
func (s OptString) Or(def string) string {
	if !s.Valid {
		return def
	}
	return s.Value
}

// OptCount is a non-negative integer field that may be absent. Negative,
// fractional and non-numeric values are treated as absent.
type OptCount struct {
	Value int
	Valid bool
}

func (c *OptCount) UnmarshalJSON(data []byte) error {
	*c = OptCount{}

	// json.Number would also accept a quoted numeral.
	if len(data) == 0 || data[0] == '"' {
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return nil
	}
	v, err := n.Int64()
	if err != nil || v < 0 || int64(int(v)) != v {
		return nil
	}
	*c = OptCount{Value: int(v), Valid: true}
	return nil
}

// Or returns the value, or def when absent.
func (c OptCount) Or(def int) int {
	if !c.Valid {
		return def
	}
	return c.Value
}

// Ptr returns a pointer to the value, or nil when absent.
func (c OptCount) Ptr() *int {
	if !c.Valid {
		return nil
	}
	v := c.Value
	return &v
}

// OptBool is a boolean field that may be absent.
type OptBool struct {
	Value bool
	Valid bool
}

func (b *OptBool) UnmarshalJSON(data []byte) error {
	var v bool
	if err := json.Unmarshal(data, &v); err != nil {
		*b = OptBool{}
		return nil
	}
	*b = OptBool{Value: v, Valid: true}
	return nil
}

// Or returns the value, or def when absent.
func (b OptBool) Or(def bool) bool {
	if !b.Valid {
		return def
	}
	return b.Value
}
