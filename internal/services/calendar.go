package services

import "time"

// Calendar supplies working-day counts per month. The real figure belongs
// to an HR calendar system; the engine only consumes it.
type Calendar interface {
	WorkingDays(month Month) int
}

// WeekdayCalendar counts Monday through Friday, ignoring public holidays.
type WeekdayCalendar struct{}

func (WeekdayCalendar) WorkingDays(month Month) int {
	days := 0
	for cursor := month.FirstDay(); cursor.Month() == month.Mon; cursor = cursor.AddDate(0, 0, 1) {
		switch cursor.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			days++
		}
	}
	return days
}
