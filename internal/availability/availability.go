package availability

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"mentor-booking-service/internal/models"
)

// HourlySlots generates the bookable start times for a working day: one
// "HH:00" entry per whole hour in [start, end). The end hour itself is never a
// start time. Minute components are ignored, only the hour matters. If end is
// not after start the grid is empty, not an error.
func HourlySlots(hours models.WorkingHours) []string {
	start, ok := hourOf(hours.Start)
	if !ok {
		return nil
	}
	end, ok := hourOf(hours.End)
	if !ok {
		return nil
	}
	if start >= end {
		return nil
	}

	slots := make([]string, 0, end-start)
	for h := start; h < end; h++ {
		slots = append(slots, fmt.Sprintf("%02d:00", h))
	}

	return slots
}

// IsDateBookable reports whether date is selectable at all for this config:
// a working weekday, not fully blocked, and not in the past. Dates are
// compared at day granularity. Any doubt fails closed.
func IsDateBookable(cfg *models.AvailabilityConfig, dateISO string, today time.Time) bool {
	date, err := time.Parse(models.DateLayout, dateISO)
	if err != nil {
		return false
	}

	if !worksOn(cfg.WorkingDays, date.Weekday()) {
		return false
	}

	if exc, ok := cfg.Exceptions[dateISO]; ok && exc.FullDay {
		return false
	}

	if date.Before(truncateToDate(today, time.UTC)) {
		return false
	}

	return true
}

// TimesFor returns the open hour slots for date, in ascending order: the
// hourly grid minus the blocked times listed for that date. Unbookable dates
// yield an empty result. Pure recomputation, safe to call per render.
func TimesFor(cfg *models.AvailabilityConfig, dateISO string, today time.Time) []string {
	if !IsDateBookable(cfg, dateISO, today) {
		return nil
	}

	exc, hasExc := cfg.Exceptions[dateISO]
	if hasExc && exc.FullDay {
		return nil
	}

	blocked := map[string]struct{}{}
	if hasExc {
		for _, t := range exc.Times {
			blocked[t] = struct{}{}
		}
	}

	var times []string
	for _, slot := range HourlySlots(cfg.WorkingHours) {
		if _, ok := blocked[slot]; ok {
			continue
		}
		times = append(times, slot)
	}

	return times
}

// BookableDates lists the selectable dates within the rolling booking window
// [today, today+windowDays], inclusive. The window bound lives here, at the
// date-picker boundary; IsDateBookable stays window-agnostic.
func BookableDates(cfg *models.AvailabilityConfig, today time.Time, windowDays int) []string {
	start := truncateToDate(today, time.UTC)

	var dates []string
	for i := 0; i <= windowDays; i++ {
		d := start.AddDate(0, 0, i)
		dateISO := d.Format(models.DateLayout)
		if IsDateBookable(cfg, dateISO, today) {
			dates = append(dates, dateISO)
		}
	}

	return dates
}

// truncateToDate возвращает дату с нулевым временем в указанной локации
func truncateToDate(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func worksOn(workingDays []int, wd time.Weekday) bool {
	for _, d := range workingDays {
		if time.Weekday(d) == wd {
			return true
		}
	}
	return false
}

// hourOf extracts the hour from an "HH:MM" string, dropping the minutes.
func hourOf(s string) (int, bool) {
	hh, _, found := strings.Cut(s, ":")
	if !found {
		hh = s
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	return h, true
}
