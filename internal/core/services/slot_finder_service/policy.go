package slot_finder_service

import (
	"time"

	"github.com/dbondarchuk/vivid-availability/internal/core/domain"
	"github.com/dbondarchuk/vivid-availability/internal/utils"
)

// nextSearchMoment переводит позицию поиска к ближайшему допустимому началу слота
// по правилу slotStart. Позиция — это начало буфера перед слотом, поэтому
// выравнивание считается для searchMoment + minAvailableTimeBeforeSlot,
// а результат возвращается обратно со сдвигом на буфер.
func nextSearchMoment(moment time.Time, configuration domain.TimeSlotsFinderConfiguration) time.Time {
	before := time.Duration(configuration.MinAvailableTimeBeforeSlot) * time.Minute

	rounded := utils.RoundUpToMinute(moment)
	slotStartAt := rounded.Add(before)

	switch configuration.SlotStart.Kind {
	case domain.SlotStartFixedStep:
		step := configuration.SlotStart.Step
		minuteToAdd := (step - slotStartAt.Minute()%step) % step
		return rounded.Add(time.Duration(minuteToAdd) * time.Minute)

	case domain.SlotStartEveryHour:
		if slotStartAt.Minute() == 0 {
			return rounded
		}
		// Ближайшее начало часа; сдвигаем назад на буфер, чтобы после его
		// прибавления слот начинался ровно в начале часа
		nextHour := time.Date(slotStartAt.Year(), slotStartAt.Month(), slotStartAt.Day(),
			slotStartAt.Hour()+1, 0, 0, 0, slotStartAt.Location())
		return nextHour.Add(-before)

	case domain.SlotStartCustom:
		// Ищем самое раннее из настроенных времён этого же дня, не раньше кандидата
		var best time.Time
		for _, custom := range configuration.CustomSlots {
			candidate := time.Date(slotStartAt.Year(), slotStartAt.Month(), slotStartAt.Day(),
				custom.Hour(), custom.Minute(), 0, 0, slotStartAt.Location())
			if candidate.Before(slotStartAt) {
				continue
			}
			if best.IsZero() || candidate.Before(best) {
				best = candidate
			}
		}
		if !best.IsZero() {
			return best.Add(-before)
		}
		// Времён на этот день больше нет — уводим позицию далеко за конец смены,
		// чтобы проход по ней завершился
		return rounded.AddDate(10, 0, 0)
	}

	return rounded
}
