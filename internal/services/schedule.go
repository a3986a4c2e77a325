package services

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"training-dashboard/internal/logger"
	"training-dashboard/internal/models"
)

// ScheduleService finds today's entry in the training schedule file.
type ScheduleService struct {
	path   string
	logger logger.Logger
	now    func() time.Time
}

func NewScheduleService(path string, log logger.Logger) *ScheduleService {
	return &ScheduleService{
		path:   path,
		logger: log,
		now:    time.Now,
	}
}

// Today re-reads the schedule file and resolves the entry for the current
// local date. A missing file is logged and reported as no entry.
func (s *ScheduleService) Today() *models.DaySchedule {
	data, err := os.ReadFile(s.path)
	if err != nil {
		s.logger.Error("ScheduleService", fmt.Errorf("reading schedule: %w", err), map[string]interface{}{
			"path": s.path,
		})
		return nil
	}
	return s.ResolveToday(data, s.now())
}

// ResolveToday returns the first day, in document order, whose Day and Date
// match now's weekday abbreviation and "DD-MM" date. now is interpreted in its
// own location. A document that fails to parse is logged and yields nil.
func (s *ScheduleService) ResolveToday(document []byte, now time.Time) *models.DaySchedule {
	var schedule models.Schedule
	if err := json.Unmarshal(document, &schedule); err != nil {
		s.logger.Error("ScheduleService", fmt.Errorf("parsing schedule: %w", err), nil)
		return nil
	}

	day := WeekdayAbbrev(now.Weekday())
	date := DayMonth(now)

	for _, week := range schedule.Weeks {
		for i := range week.Schedule {
			entry := week.Schedule[i]
			if entry.Day == day && entry.Date == date {
				s.logger.Debug("ScheduleService", "schedule entry matched", map[string]interface{}{
					"week": week.Label,
					"day":  day,
					"date": date,
				})
				return &entry
			}
		}
	}

	s.logger.Debug("ScheduleService", "no schedule entry for today", map[string]interface{}{
		"day":  day,
		"date": date,
	})
	return nil
}

// WeekdayAbbrev returns MON, TUE, ... SUN.
func WeekdayAbbrev(d time.Weekday) string {
	return strings.ToUpper(d.String()[:3])
}

// DayMonth formats t as zero-padded "DD-MM".
func DayMonth(t time.Time) string {
	return t.Format("02-01")
}
