package models

import (
	"testing"
)

func TestParseCondition_KnownCategories(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Condition
	}{
		{"clear", "Clear", ConditionClear},
		{"clouds", "Clouds", ConditionClouds},
		{"rain", "Rain", ConditionRain},
		{"drizzle", "Drizzle", ConditionDrizzle},
		{"thunderstorm", "Thunderstorm", ConditionThunderstorm},
		{"snow", "Snow", ConditionSnow},
		{"mist", "Mist", ConditionMist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseCondition(tt.in); got != tt.want {
				t.Errorf("ParseCondition(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseCondition_UnknownCategories(t *testing.T) {
	// The provider reports more categories than the UI has themes for; all
	// of them must collapse to Other rather than error.
	for _, in := range []string{"Haze", "Smoke", "Dust", "Squall", "Tornado", "", "clear"} {
		if got := ParseCondition(in); got != ConditionOther {
			t.Errorf("ParseCondition(%q) = %v, want ConditionOther", in, got)
		}
	}
}

func TestPlaceQuery(t *testing.T) {
	q := PlaceQuery("Colombo")

	if q.Kind != QueryByPlace {
		t.Errorf("Kind = %v, want QueryByPlace", q.Kind)
	}
	if q.Place != "Colombo" {
		t.Errorf("Place = %q, want 'Colombo'", q.Place)
	}
	if q.Lat != 0 || q.Lon != 0 {
		t.Errorf("coords = (%v, %v), want zero for a place query", q.Lat, q.Lon)
	}
	if q.Warning != "" {
		t.Errorf("Warning = %q, want empty", q.Warning)
	}
}

func TestCoordQuery(t *testing.T) {
	q := CoordQuery(6.9271, 79.8612)

	if q.Kind != QueryByCoords {
		t.Errorf("Kind = %v, want QueryByCoords", q.Kind)
	}
	if q.Lat != 6.9271 || q.Lon != 79.8612 {
		t.Errorf("coords = (%v, %v), want (6.9271, 79.8612)", q.Lat, q.Lon)
	}
	if q.Place != "" {
		t.Errorf("Place = %q, want empty for a coord query", q.Place)
	}
}

func TestQuery_WithWarning(t *testing.T) {
	q := PlaceQuery("Colombo")
	warned := q.WithWarning("Permission denied. Showing weather for Colombo.")

	if warned.Warning != "Permission denied. Showing weather for Colombo." {
		t.Errorf("Warning = %q, want the advisory verbatim", warned.Warning)
	}

	// WithWarning copies; the original stays untouched.
	if q.Warning != "" {
		t.Errorf("original Query mutated: Warning = %q", q.Warning)
	}

	if warned.Kind != QueryByPlace || warned.Place != "Colombo" {
		t.Errorf("WithWarning changed the query variant: %+v", warned)
	}
}
