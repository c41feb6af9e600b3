package availability

import (
	"reflect"
	"testing"
	"time"

	"mentor-booking-service/internal/models"
)

func testConfig() *models.AvailabilityConfig {
	return &models.AvailabilityConfig{
		WorkingDays:  []int{1, 2, 3, 4, 5},
		WorkingHours: models.WorkingHours{Start: "09:00", End: "17:00", Timezone: "UTC"},
		Exceptions:   map[string]models.DayException{},
	}
}

func date(s string) time.Time {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestHourlySlots(t *testing.T) {
	tests := []struct {
		name  string
		hours models.WorkingHours
		want  []string
	}{
		{
			name:  "end hour excluded",
			hours: models.WorkingHours{Start: "09:00", End: "12:00"},
			want:  []string{"09:00", "10:00", "11:00"},
		},
		{
			name:  "zero padded",
			hours: models.WorkingHours{Start: "08:00", End: "11:00"},
			want:  []string{"08:00", "09:00", "10:00"},
		},
		{
			name:  "minutes ignored",
			hours: models.WorkingHours{Start: "09:30", End: "12:00"},
			want:  []string{"09:00", "10:00", "11:00"},
		},
		{
			name:  "start equals end",
			hours: models.WorkingHours{Start: "09:00", End: "09:00"},
			want:  nil,
		},
		{
			name:  "start after end",
			hours: models.WorkingHours{Start: "17:00", End: "09:00"},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HourlySlots(tt.hours)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("HourlySlots(%v) = %v, want %v", tt.hours, got, tt.want)
			}
		})
	}
}

func TestIsDateBookable(t *testing.T) {
	today := date("2024-11-01")

	cfg := testConfig()
	cfg.Exceptions["2024-12-25"] = models.DayException{FullDay: true}

	tests := []struct {
		name    string
		dateISO string
		want    bool
	}{
		{"working weekday", "2024-11-06", true}, // Wednesday
		{"saturday", "2024-11-09", false},
		{"sunday", "2024-11-10", false},
		{"full day block on working weekday", "2024-12-25", false},
		{"past date", "2024-10-31", false},
		{"today itself", "2024-11-01", true}, // Friday
		{"malformed date", "not-a-date", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDateBookable(cfg, tt.dateISO, today); got != tt.want {
				t.Errorf("IsDateBookable(%s) = %v, want %v", tt.dateISO, got, tt.want)
			}
		})
	}
}

func TestTimesFor(t *testing.T) {
	today := date("2024-11-01")

	t.Run("non working day ignores exceptions", func(t *testing.T) {
		cfg := testConfig()
		cfg.Exceptions["2024-11-09"] = models.DayException{Times: []string{"10:00"}}

		if got := TimesFor(cfg, "2024-11-09", today); len(got) != 0 {
			t.Errorf("saturday should have no times, got %v", got)
		}
	})

	t.Run("full day block yields empty", func(t *testing.T) {
		cfg := testConfig()
		cfg.Exceptions["2024-12-25"] = models.DayException{FullDay: true}

		if got := TimesFor(cfg, "2024-12-25", today); len(got) != 0 {
			t.Errorf("blocked day should have no times, got %v", got)
		}
	})

	t.Run("partial block removes listed times only", func(t *testing.T) {
		cfg := testConfig()
		cfg.WorkingHours = models.WorkingHours{Start: "09:00", End: "18:00"}
		cfg.Exceptions["2024-11-15"] = models.DayException{Times: []string{"10:00", "14:00"}}

		want := []string{"09:00", "11:00", "12:00", "13:00", "15:00", "16:00", "17:00"}
		got := TimesFor(cfg, "2024-11-15", today)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("TimesFor = %v, want %v", got, want)
		}
	})

	t.Run("open wednesday returns full grid", func(t *testing.T) {
		cfg := testConfig()

		want := []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00"}
		got := TimesFor(cfg, "2024-11-06", today)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("TimesFor = %v, want %v", got, want)
		}
	})

	t.Run("empty blocked list equals absent entry", func(t *testing.T) {
		withEntry := testConfig()
		withEntry.Exceptions["2024-11-06"] = models.DayException{Times: []string{}}

		withoutEntry := testConfig()

		if !reflect.DeepEqual(
			TimesFor(withEntry, "2024-11-06", today),
			TimesFor(withoutEntry, "2024-11-06", today),
		) {
			t.Error("empty blocked list and absent entry must be equivalent")
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		cfg := testConfig()
		cfg.Exceptions["2024-11-15"] = models.DayException{Times: []string{"10:00"}}

		first := TimesFor(cfg, "2024-11-15", today)
		second := TimesFor(cfg, "2024-11-15", today)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("repeated calls differ: %v vs %v", first, second)
		}
	})
}

func TestBookableDates(t *testing.T) {
	today := date("2024-11-01")

	cfg := testConfig()
	cfg.Exceptions["2024-11-06"] = models.DayException{FullDay: true}

	dates := BookableDates(cfg, today, 60)

	if len(dates) == 0 {
		t.Fatal("expected some bookable dates")
	}

	first := date(dates[0])
	last := date(dates[len(dates)-1])
	if first.Before(today) {
		t.Errorf("first date %s is before today", dates[0])
	}
	if last.After(today.AddDate(0, 0, 60)) {
		t.Errorf("last date %s is outside the window", dates[len(dates)-1])
	}

	for _, d := range dates {
		if d == "2024-11-06" {
			t.Error("fully blocked date offered")
		}
		wd := date(d).Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			t.Errorf("weekend date %s offered", d)
		}
	}
}
