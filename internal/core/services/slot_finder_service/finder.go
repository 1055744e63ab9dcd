package slot_finder_service

import (
	"time"

	"github.com/dbondarchuk/vivid-availability/internal/core/domain"
	"github.com/dbondarchuk/vivid-availability/internal/utils"
)

// FindAvailableTimeSlots — точка входа движка поиска слотов.
// Принимает уже материализованные занятые интервалы календаря, конфигурацию
// и границы поиска; возвращает упорядоченный по времени список доступных слотов.
// Вычисление чистое: никакого ввода-вывода и состояния между вызовами.
func FindAvailableTimeSlots(calendarEvents []domain.DateTimePeriod, configuration domain.TimeSlotsFinderConfiguration, from, to time.Time) ([]domain.TimeSlot, error) {
	return findAvailableTimeSlots(calendarEvents, configuration, from, to, time.Now())
}

func findAvailableTimeSlots(calendarEvents []domain.DateTimePeriod, configuration domain.TimeSlotsFinderConfiguration, from, to, now time.Time) ([]domain.TimeSlot, error) {
	if from.IsZero() || to.IsZero() || from.After(to) {
		return nil, domain.NewTimeSlotsFinderError("invalid search period: from must be before to")
	}

	if err := validateConfiguration(configuration); err != nil {
		return nil, err
	}

	// Таймзона уже проверена валидатором
	location, _ := time.LoadLocation(configuration.TimeZone)

	// Пересекающиеся смены молча сливаются, а не отклоняются
	schedule := normalizeSchedule(configuration.Schedule)

	firstFromMoment, lastToMoment := computeSearchBoundaries(from, to, now, location, configuration)

	timeSlots := make([]domain.TimeSlot, 0)
	if firstFromMoment.After(lastToMoment) {
		return timeSlots, nil
	}

	// Обходим окно поиска по календарным дням
	for day := utils.StartCurrentDay(firstFromMoment); !day.After(lastToMoment); day = utils.StartNextDay(day) {
		shifts, ok := schedule[utils.ISODate(day)]
		if !ok {
			continue
		}

		for _, shift := range shifts {
			shiftStart, shiftEnd := shiftWindow(day, shift)

			// Обрезаем смену по границам окна поиска
			partialFrom := maxTime(firstFromMoment, shiftStart)
			partialTo := minTime(lastToMoment, shiftEnd)
			if partialFrom.After(partialTo) {
				continue
			}

			timeSlots = append(timeSlots, findSlotsForShift(configuration, calendarEvents, partialFrom, partialTo)...)
		}
	}

	return timeSlots, nil
}

// shiftWindow применяет локальное время смены к календарному дню.
// Формат "HH:MM" уже проверен валидатором.
func shiftWindow(day time.Time, shift domain.Shift) (time.Time, time.Time) {
	startTime, _ := time.Parse("15:04", shift.Start)
	endTime, _ := time.Parse("15:04", shift.End)

	start := time.Date(day.Year(), day.Month(), day.Day(), startTime.Hour(), startTime.Minute(), 0, 0, day.Location())
	end := time.Date(day.Year(), day.Month(), day.Day(), endTime.Hour(), endTime.Minute(), 0, 0, day.Location())
	return start, end
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
