package slot_finder_service

import (
	"time"

	"github.com/dbondarchuk/vivid-availability/internal/core/domain"
	"github.com/dbondarchuk/vivid-availability/internal/utils"
)

// buildBusyTimeline материализует недоступные периоды в таймзоне поиска,
// объединяет их с событиями календаря и возвращает отсортированный список
// без интервалов, целиком накрытых другими.
// Список заранее обрезается до [filterMin, filterMax] — остальное поиску не нужно.
func buildBusyTimeline(unavailablePeriods []domain.TimeSlotPeriod, calendarEvents []domain.DateTimePeriod, location *time.Location, filterMin, filterMax time.Time) []domain.DateTimePeriod {
	all := make([]domain.DateTimePeriod, 0, len(unavailablePeriods)+len(calendarEvents))
	for _, period := range unavailablePeriods {
		all = append(all, materializePeriod(period, location, filterMin.Year()))
		// Повторяющийся период, перешагивающий Новый год, начатый в прошлом
		// году, может накрывать начало окна — материализуем и его
		if period.StartAt.Recurring() {
			all = append(all, materializePeriod(period, location, filterMin.Year()-1))
		}
	}
	all = append(all, calendarEvents...)

	// Оставляем только интервалы, пересекающие окно
	filtered := make(periodSlice, 0, len(all))
	for _, period := range all {
		if period.StartAt.Before(filterMax) && period.EndAt.After(filterMin) {
			filtered = append(filtered, period)
		}
	}

	sorted := filtered.quickSort()

	// Убираем интервалы, целиком накрытые более ранними.
	// Список отсортирован по началу, поэтому достаточно одного прохода:
	// интервал накрыт тогда и только тогда, когда его конец не дальше
	// самого дальнего уже увиденного конца.
	timeline := make([]domain.DateTimePeriod, 0, len(sorted))
	var maxEnd time.Time
	for _, period := range sorted {
		if !period.EndAt.After(maxEnd) {
			continue
		}
		timeline = append(timeline, period)
		maxEnd = period.EndAt
	}

	return timeline
}

// materializePeriod переводит недоступный период в конкретный интервал.
// Периоды без года повторяются ежегодно и материализуются в году начала окна;
// если конец при этом оказался раньше начала, он переносится на следующий год.
func materializePeriod(period domain.TimeSlotPeriod, location *time.Location, fallbackYear int) domain.DateTimePeriod {
	startYear := period.StartAt.Year
	endYear := period.EndAt.Year
	if period.StartAt.Recurring() {
		startYear = fallbackYear
		endYear = fallbackYear
	}

	start := momentToTime(period.StartAt, startYear, location, false)
	end := momentToTime(period.EndAt, endYear, location, true)

	if period.EndAt.Recurring() && end.Before(start) {
		end = end.AddDate(1, 0, 0)
	}

	return domain.DateTimePeriod{StartAt: start, EndAt: end}
}

// momentToTime применяет момент к году и таймзоне.
// Момент без часа означает начало дня, а для конца периода — конец дня
// (начало следующих суток).
func momentToTime(moment domain.PeriodMoment, year int, location *time.Location, isEnd bool) time.Time {
	if moment.Hour == nil {
		day := time.Date(year, moment.Month, moment.Day, 0, 0, 0, 0, location)
		if isEnd {
			return utils.StartNextDay(day)
		}
		return day
	}

	return time.Date(year, moment.Month, moment.Day, *moment.Hour, moment.Minute, 0, 0, location)
}
