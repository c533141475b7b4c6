package services

import "github.com/spanteq/console/internal/models"

// Project recomputes the pay breakdown for each of horizon months
// starting at from, with the configured off days applied to every step.
// Grace phases, bonus windows and cadences evolve as the months advance.
// Nothing is persisted; rerunning with the same inputs yields the same
// series.
func Project(salary models.Salary, from Month, horizon int) []PayBreakdown {
	return ProjectWithCalendar(salary, from, horizon, WeekdayCalendar{})
}

// ProjectWithCalendar is Project with an explicit working-days source.
func ProjectWithCalendar(salary models.Salary, from Month, horizon int, calendar Calendar) []PayBreakdown {
	if horizon < 0 {
		horizon = 0
	}
	series := make([]PayBreakdown, 0, horizon)
	for step := 0; step < horizon; step++ {
		month := from.AddMonths(step)
		series = append(series, ComputeMonth(salary, month, salary.OffDaysTaken, calendar))
	}
	return series
}
