package services

import (
	"fmt"
	"time"
)

const monthLayout = "2006-01"

// Month is a calendar month without a day component, the unit both the
// salary engine and PTO requests operate on.
type Month struct {
	Year int
	Mon  time.Month
}

func ParseMonth(value string) (Month, error) {
	parsed, err := time.Parse(monthLayout, value)
	if err != nil {
		return Month{}, fmt.Errorf("parse month %q: %w", value, err)
	}
	return Month{Year: parsed.Year(), Mon: parsed.Month()}, nil
}

func MonthOf(moment time.Time) Month {
	return Month{Year: moment.Year(), Mon: moment.Month()}
}

func (month Month) String() string {
	return fmt.Sprintf("%04d-%02d", month.Year, int(month.Mon))
}

func (month Month) AddMonths(count int) Month {
	total := month.Year*12 + int(month.Mon) - 1 + count
	return Month{Year: total / 12, Mon: time.Month(total%12 + 1)}
}

func (month Month) Before(other Month) bool {
	if month.Year != other.Year {
		return month.Year < other.Year
	}
	return month.Mon < other.Mon
}

func (month Month) After(other Month) bool {
	return other.Before(month)
}

// MonthsBetween returns to minus from in whole months.
func MonthsBetween(from Month, to Month) int {
	return (to.Year-from.Year)*12 + int(to.Mon) - int(from.Mon)
}

// FirstDay returns midnight UTC on the first day of the month.
func (month Month) FirstDay() time.Time {
	return time.Date(month.Year, month.Mon, 1, 0, 0, 0, 0, time.UTC)
}
