package slot_finder_service

import (
	"time"

	"github.com/dbondarchuk/vivid-availability/internal/core/domain"
	"github.com/dbondarchuk/vivid-availability/internal/utils"
)

// findSlotsForShift — жадный проход по одной смене.
// Инвариант цикла: searchMoment всегда указывает на начало обязательного
// буфера перед слотом, а не на начало самого слота.
func findSlotsForShift(configuration domain.TimeSlotsFinderConfiguration, calendarEvents []domain.DateTimePeriod, from, to time.Time) []domain.TimeSlot {
	before := time.Duration(configuration.MinAvailableTimeBeforeSlot) * time.Minute
	duration := time.Duration(configuration.TimeSlotDuration) * time.Minute
	after := time.Duration(configuration.MinAvailableTimeAfterSlot) * time.Minute

	// Сколько свободного времени нужно под буфер, слот и хвостовой буфер
	minTimeWindowNeeded := before + duration + after

	searchMoment := from.Add(-before)

	// Слот, поставленный ровно в searchEndMoment, ещё успевает
	// уложить буфер и длительность до конца смены
	searchEndMoment := withSecond59(to.Add(-(duration + before)))

	// Локально значимая часть занятых интервалов
	busyTimeline := buildBusyTimeline(
		configuration.UnavailablePeriods,
		calendarEvents,
		from.Location(),
		from.Add(-before),
		to.Add(duration+before),
	)
	eventIndex := 0

	timeSlots := make([]domain.TimeSlot, 0)

	for {
		// Кандидат выравнивается по правилу начала слота
		searchMoment = nextSearchMoment(searchMoment, configuration)

		// Перешагиваем занятые интервалы, с которыми окно кандидата пересекается.
		// После стыка поиск продолжается прямо с конца интервала,
		// выравнивание по сетке вернётся со следующего кандидата.
		for eventIndex < len(busyTimeline) &&
			busyTimeline[eventIndex].StartAt.Before(searchMoment.Add(minTimeWindowNeeded)) {
			if busyTimeline[eventIndex].EndAt.After(searchMoment) {
				searchMoment = utils.RoundUpToMinute(busyTimeline[eventIndex].EndAt)
			}
			eventIndex++
		}

		if searchMoment.After(searchEndMoment) {
			break
		}

		slotStartAt := searchMoment.Add(before)
		timeSlots = append(timeSlots, domain.TimeSlot{
			StartAt:  slotStartAt.UTC(),
			EndAt:    slotStartAt.Add(duration).UTC(),
			Duration: configuration.TimeSlotDuration,
		})

		// Следующий кандидат — сразу после слота, буфер не считается дважды
		searchMoment = slotStartAt.Add(duration).Add(-before)
	}

	return timeSlots
}

func withSecond59(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 59, 0, t.Location())
}
