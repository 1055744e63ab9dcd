package slot_finder_service

import "github.com/dbondarchuk/vivid-availability/internal/core/domain"

// mergeOverlappingShifts сортирует смены по началу и сливает пересекающиеся
// в одну охватывающую. Это не валидация: данные вызывающего молча чинятся.
func mergeOverlappingShifts(shifts []domain.Shift) []domain.Shift {
	if len(shifts) < 2 {
		return shifts
	}

	sorted := shiftSlice(append([]domain.Shift(nil), shifts...)).quickSort()

	merged := make([]domain.Shift, 0, len(sorted))
	current := sorted[0]
	for _, shift := range sorted[1:] {
		// Конец текущей смены дотягивается до начала следующей — сливаем
		if current.End >= shift.Start {
			if shift.End > current.End {
				current.End = shift.End
			}
			continue
		}
		merged = append(merged, current)
		current = shift
	}
	merged = append(merged, current)

	return merged
}

// normalizeSchedule применяет слияние смен к каждому дню расписания
func normalizeSchedule(schedule domain.Schedule) domain.Schedule {
	normalized := make(domain.Schedule, len(schedule))
	for date, shifts := range schedule {
		normalized[date] = mergeOverlappingShifts(shifts)
	}
	return normalized
}
