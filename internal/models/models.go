package models

import (
	"encoding/json"
	"fmt"
	"time"
)

type Mentor struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Expertise    []string `json:"expertise"`
	Experience   string   `json:"experience"`
	Rating       float64  `json:"rating"`
	ReviewCount  int      `json:"reviewCount"`
	Availability string   `json:"availability"`
	Location     string   `json:"location"`
	Languages    []string `json:"languages"`
	Bio          string   `json:"bio"`
	Achievements []string `json:"achievements"`
	Image        string   `json:"image"`
	Industry     string   `json:"industry"`
}

type MentorFilters struct {
	Search       string
	Expertise    []string
	Experience   []string
	Availability []string
	Interests    []string
}

type FilterOptions struct {
	Expertise    []string `json:"expertise"`
	Experience   []string `json:"experience"`
	Availability []string `json:"availability"`
}

type Review struct {
	Author  string `json:"author"`
	Role    string `json:"role"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
}

type MenteeProfile struct {
	Interests       []string `json:"interests"`
	Goals           []string `json:"goals"`
	ExperienceLevel string   `json:"experienceLevel"`
	EducationLevel  string   `json:"educationLevel"`
	JobRole         string   `json:"jobRole"`
	City            string   `json:"city"`
}

// CVFile is the uploaded attachment as received from the booking form.
type CVFile struct {
	FileName string
	MIMEType string
	Size     int64
	Content  []byte
}

type WorkingHours struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Timezone string `json:"timezone,omitempty"`
}

// fullDaySentinel is how the upstream API marks a date with no bookable time.
// On the wire it shares a field with the blocked-hours list, so DayException
// decodes the string-or-array union into an explicit two-variant value.
const fullDaySentinel = "full-day"

// DayException is a per-date availability override: either the entire day is
// blocked, or only the listed "HH:00" slots are. An empty Times list means the
// date is fully open, same as no exception at all.
type DayException struct {
	FullDay bool
	Times   []string
}

func (e *DayException) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != fullDaySentinel {
			return fmt.Errorf("unknown exception value %q", s)
		}
		e.FullDay = true
		e.Times = nil
		return nil
	}

	var times []string
	if err := json.Unmarshal(data, &times); err != nil {
		return fmt.Errorf("exception must be %q or a list of times", fullDaySentinel)
	}

	e.FullDay = false
	e.Times = times
	return nil
}

func (e DayException) MarshalJSON() ([]byte, error) {
	if e.FullDay {
		return json.Marshal(fullDaySentinel)
	}
	if e.Times == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(e.Times)
}

// AvailabilityConfig is one mentor's working schedule plus date-keyed
// exception overlay. Held in memory (and in the cache) for the duration of a
// booking flow, never persisted by this service.
type AvailabilityConfig struct {
	MentorID     string                  `json:"mentorId,omitempty"`
	WorkingDays  []int                   `json:"workingDays"`
	WorkingHours WorkingHours            `json:"workingHours"`
	Exceptions   map[string]DayException `json:"unavailableDateTime,omitempty"`
}

const DateLayout = "2006-01-02"

var defaultWorkingDays = []int{1, 2, 3, 4, 5}

// ParseAvailabilityConfig is the boundary between the loosely shaped upstream
// JSON and the strict internal model. Missing sections fall back to defaults
// (Mon-Fri, 09:00-18:00 UTC); malformed dates and times are rejected rather
// than trusted downstream.
func ParseAvailabilityConfig(data []byte) (*AvailabilityConfig, error) {
	const op = "models.ParseAvailabilityConfig"

	var raw struct {
		MentorID     string                  `json:"mentorId"`
		WorkingDays  []int                   `json:"workingDays"`
		WorkingHours *WorkingHours           `json:"workingHours"`
		Exceptions   map[string]DayException `json:"unavailableDateTime"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cfg := &AvailabilityConfig{
		MentorID:   raw.MentorID,
		Exceptions: raw.Exceptions,
	}

	for _, d := range raw.WorkingDays {
		if d >= 0 && d <= 6 {
			cfg.WorkingDays = append(cfg.WorkingDays, d)
		}
	}
	if len(cfg.WorkingDays) == 0 {
		cfg.WorkingDays = append(cfg.WorkingDays, defaultWorkingDays...)
	}

	if raw.WorkingHours == nil {
		cfg.WorkingHours = WorkingHours{Start: "09:00", End: "18:00", Timezone: "UTC"}
	} else {
		cfg.WorkingHours = *raw.WorkingHours
		if cfg.WorkingHours.Start == "" {
			cfg.WorkingHours.Start = "09:00"
		}
		if cfg.WorkingHours.End == "" {
			cfg.WorkingHours.End = "18:00"
		}
		if _, err := time.Parse("15:04", cfg.WorkingHours.Start); err != nil {
			return nil, fmt.Errorf("%s: invalid working hours start: %w", op, err)
		}
		if _, err := time.Parse("15:04", cfg.WorkingHours.End); err != nil {
			return nil, fmt.Errorf("%s: invalid working hours end: %w", op, err)
		}
	}

	for date, exc := range raw.Exceptions {
		if _, err := time.Parse(DateLayout, date); err != nil {
			return nil, fmt.Errorf("%s: invalid exception date %q: %w", op, date, err)
		}
		for _, t := range exc.Times {
			if _, err := time.Parse("15:04", t); err != nil {
				return nil, fmt.Errorf("%s: invalid exception time %q on %s: %w", op, t, date, err)
			}
		}
	}

	return cfg, nil
}

// Onboarding option catalogs. The booking payload carries catalog positions
// (1-based) instead of the free-text labels.

var ExperienceLevels = []string{
	"Student/Entry Level",
	"Junior (1-2 years)",
	"Mid-level (3-5 years)",
	"Senior (6-8 years)",
	"Mid Senior (8-10 years)",
	"Executive (11+ years)",
}

var EducationLevels = []string{
	"High School",
	"Diploma",
	"Bachelor's Degree",
	"Master's Degree",
	"Other",
}

var JobRolesByExpertise = map[string][]string{
	"Software Engineering": {
		"Intern Software Engineer",
		"Associate Software Engineer",
		"Software Engineer",
		"Senior Software Engineer",
		"Associate Technical Lead",
		"Technical Lead",
		"Senior Technical Lead",
		"Software Architect",
	},
	"Quality Engineering": {
		"Intern Quality Engineer",
		"Associate Quality Engineer",
		"Quality Engineer",
		"Senior Quality Engineer",
		"Quality Lead",
		"Senior Quality Lead",
		"Software Architect",
	},
	"Business Analysis": {
		"Business Analyst Intern",
		"Junior Business Analyst",
		"Business Analyst",
		"Senior Business Analyst",
		"Lead Business Analyst",
	},
}
