package services

import (
	"testing"
	"time"
)

func TestParseMonth(t *testing.T) {
	month, err := ParseMonth("2024-03")
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if month.Year != 2024 || month.Mon != time.March {
		t.Fatalf("unexpected month: %+v", month)
	}

	for _, invalid := range []string{"", "2024", "2024-13", "03-2024", "2024-3"} {
		if _, err := ParseMonth(invalid); err == nil {
			t.Fatalf("expected %q to fail parsing", invalid)
		}
	}
}

func TestAddMonthsCrossesYearBoundaries(t *testing.T) {
	november := Month{Year: 2024, Mon: time.November}

	if result := november.AddMonths(3); result.String() != "2025-02" {
		t.Fatalf("expected 2025-02, got %s", result)
	}
	if result := november.AddMonths(-11); result.String() != "2023-12" {
		t.Fatalf("expected 2023-12, got %s", result)
	}
	if result := november.AddMonths(0); result != november {
		t.Fatalf("expected identity, got %s", result)
	}
}

func TestMonthsBetween(t *testing.T) {
	january := Month{Year: 2024, Mon: time.January}
	april := Month{Year: 2024, Mon: time.April}

	if diff := MonthsBetween(january, april); diff != 3 {
		t.Fatalf("expected 3, got %d", diff)
	}
	if diff := MonthsBetween(april, january); diff != -3 {
		t.Fatalf("expected -3, got %d", diff)
	}
	if diff := MonthsBetween(january, Month{Year: 2026, Mon: time.January}); diff != 24 {
		t.Fatalf("expected 24, got %d", diff)
	}
}

func TestWeekdayCalendarWorkingDays(t *testing.T) {
	// March 2024 has 21 weekdays; February 2024 (leap) has 21 as well.
	if days := (WeekdayCalendar{}).WorkingDays(Month{Year: 2024, Mon: time.March}); days != 21 {
		t.Fatalf("expected 21 working days in March 2024, got %d", days)
	}
	if days := (WeekdayCalendar{}).WorkingDays(Month{Year: 2024, Mon: time.February}); days != 21 {
		t.Fatalf("expected 21 working days in February 2024, got %d", days)
	}
}
