package logistics

import (
	"testing"

	"sokoway/models"
)

func TestParseTimeEstimate(t *testing.T) {
	cases := []struct {
		name     string
		estimate string
		wantMin  float64
		wantMax  float64
		wantUnit models.TimeUnit
		wantOK   bool
	}{
		{"hour range", "2-3 hours", 2, 3, models.TimeUnitHours, true},
		{"day range", "1-2 days", 1, 2, models.TimeUnitDays, true},
		{"single hours", "4 hours", 4, 4, models.TimeUnitHours, true},
		{"single day", "1 day", 1, 1, models.TimeUnitDays, true},
		{"no space before unit", "2-3hours", 2, 3, models.TimeUnitHours, true},
		{"mixed case", "2-3 Hours", 2, 3, models.TimeUnitHours, true},
		{"embedded in sentence", "about 5 hours door to door", 5, 5, models.TimeUnitHours, true},
		{"unrecognized word", "fast", 0, 0, models.TimeUnitHours, false},
		{"empty", "", 0, 0, models.TimeUnitHours, false},
		{"number only", "3", 0, 0, models.TimeUnitHours, false},
		{"minutes not supported", "45 minutes", 0, 0, models.TimeUnitHours, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseTimeEstimate(tc.estimate)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if !ok {
				return
			}
			if got.Min != tc.wantMin || got.Max != tc.wantMax || got.Unit != tc.wantUnit {
				t.Errorf("parsed %v-%v %s, want %v-%v %s",
					got.Min, got.Max, got.Unit, tc.wantMin, tc.wantMax, tc.wantUnit)
			}
		})
	}
}

func TestTimeRangeHours(t *testing.T) {
	cases := []struct {
		name string
		tr   models.TimeRange
		want float64
	}{
		{"hour range midpoint", models.TimeRange{Min: 2, Max: 3, Unit: models.TimeUnitHours}, 2.5},
		{"single hour value", models.TimeRange{Min: 4, Max: 4, Unit: models.TimeUnitHours}, 4},
		{"day range midpoint", models.TimeRange{Min: 1, Max: 2, Unit: models.TimeUnitDays}, 36},
		{"single day", models.TimeRange{Min: 1, Max: 1, Unit: models.TimeUnitDays}, 24},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.tr.Hours(); got != tc.want {
				t.Fatalf("Hours() = %v, want %v", got, tc.want)
			}
		})
	}
}
