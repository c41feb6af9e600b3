package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestDayExceptionJSON(t *testing.T) {
	t.Run("full day sentinel", func(t *testing.T) {
		var exc DayException
		if err := json.Unmarshal([]byte(`"full-day"`), &exc); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !exc.FullDay || exc.Times != nil {
			t.Errorf("got %+v, want full day", exc)
		}

		out, err := json.Marshal(exc)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(out) != `"full-day"` {
			t.Errorf("round trip = %s", out)
		}
	})

	t.Run("blocked times list", func(t *testing.T) {
		var exc DayException
		if err := json.Unmarshal([]byte(`["10:00","14:00"]`), &exc); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if exc.FullDay {
			t.Error("list must not be a full-day block")
		}
		if !reflect.DeepEqual(exc.Times, []string{"10:00", "14:00"}) {
			t.Errorf("times = %v", exc.Times)
		}
	})

	t.Run("unknown sentinel rejected", func(t *testing.T) {
		var exc DayException
		if err := json.Unmarshal([]byte(`"half-day"`), &exc); err == nil {
			t.Error("unknown string sentinel must be rejected")
		}
	})

	t.Run("other shapes rejected", func(t *testing.T) {
		var exc DayException
		if err := json.Unmarshal([]byte(`42`), &exc); err == nil {
			t.Error("numeric exception must be rejected")
		}
	})
}

func TestParseAvailabilityConfig(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		data := []byte(`{
			"workingDays": [1, 2, 3, 4, 5],
			"workingHours": {"start": "09:00", "end": "17:00", "timezone": "PST"},
			"unavailableDateTime": {
				"2024-12-25": "full-day",
				"2024-11-15": ["10:00", "14:00"]
			}
		}`)

		cfg, err := ParseAvailabilityConfig(data)
		if err != nil {
			t.Fatalf("parse: %v", err)
		}

		if cfg.WorkingHours.Timezone != "PST" {
			t.Errorf("timezone = %q", cfg.WorkingHours.Timezone)
		}
		if !cfg.Exceptions["2024-12-25"].FullDay {
			t.Error("christmas must be a full-day block")
		}
		if len(cfg.Exceptions["2024-11-15"].Times) != 2 {
			t.Errorf("blocked times = %v", cfg.Exceptions["2024-11-15"].Times)
		}
	})

	t.Run("empty object gets defaults", func(t *testing.T) {
		cfg, err := ParseAvailabilityConfig([]byte(`{}`))
		if err != nil {
			t.Fatalf("parse: %v", err)
		}

		if !reflect.DeepEqual(cfg.WorkingDays, []int{1, 2, 3, 4, 5}) {
			t.Errorf("working days = %v, want Mon-Fri", cfg.WorkingDays)
		}
		want := WorkingHours{Start: "09:00", End: "18:00", Timezone: "UTC"}
		if cfg.WorkingHours != want {
			t.Errorf("working hours = %+v, want %+v", cfg.WorkingHours, want)
		}
	})

	t.Run("out of range weekdays dropped", func(t *testing.T) {
		cfg, err := ParseAvailabilityConfig([]byte(`{"workingDays": [1, 9, 3, -2]}`))
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		if !reflect.DeepEqual(cfg.WorkingDays, []int{1, 3}) {
			t.Errorf("working days = %v, want [1 3]", cfg.WorkingDays)
		}
	})

	t.Run("malformed exception date rejected", func(t *testing.T) {
		_, err := ParseAvailabilityConfig([]byte(`{"unavailableDateTime": {"25-12-2024": "full-day"}}`))
		if err == nil {
			t.Error("malformed date key must be rejected")
		}
	})

	t.Run("malformed exception time rejected", func(t *testing.T) {
		_, err := ParseAvailabilityConfig([]byte(`{"unavailableDateTime": {"2024-12-25": ["25:99"]}}`))
		if err == nil {
			t.Error("malformed time entry must be rejected")
		}
	})

	t.Run("malformed working hours rejected", func(t *testing.T) {
		_, err := ParseAvailabilityConfig([]byte(`{"workingHours": {"start": "morning", "end": "17:00"}}`))
		if err == nil {
			t.Error("malformed start must be rejected")
		}
	})
}
