package slot_finder_service

import (
	"time"

	"github.com/dbondarchuk/vivid-availability/internal/core/domain"
	"github.com/dbondarchuk/vivid-availability/internal/utils"
)

// computeSearchBoundaries выводит действующее окно поиска из границ вызывающего,
// текущего момента и ограничений политики.
// Ни один слот не начнётся раньше первой границы и не закончится позже второй.
func computeSearchBoundaries(from, to, now time.Time, location *time.Location, configuration domain.TimeSlotsFinderConfiguration) (time.Time, time.Time) {
	nowMoment := now.In(location)

	// Раньше, чем через minAvailableTimeBeforeSlot + minTimeBeforeFirstSlot
	// от текущего момента, слоты начинаться не могут
	leadMinutes := configuration.MinAvailableTimeBeforeSlot + configuration.MinTimeBeforeFirstSlot
	earliest := nowMoment.Add(time.Duration(leadMinutes) * time.Minute)

	firstFromMoment := maxTime(from.In(location), earliest)

	lastToMoment := to.In(location)
	if configuration.MaxDaysBeforeLastSlot > 0 {
		// Лимит — конец последнего разрешённого дня
		searchLimit := utils.StartNextDay(nowMoment.AddDate(0, 0, configuration.MaxDaysBeforeLastSlot))
		lastToMoment = minTime(lastToMoment, searchLimit)
	}

	return firstFromMoment, lastToMoment
}
