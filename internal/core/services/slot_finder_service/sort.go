package slot_finder_service

import "github.com/dbondarchuk/vivid-availability/internal/core/domain"

type shiftSlice []domain.Shift

// quickSort — функция для сортировки смен по локальному времени начала
func (s shiftSlice) quickSort() shiftSlice {
	if len(s) < 2 {
		return s
	}

	// Выбираем опорный элемент
	pivot := s[len(s)/2]

	// Разделяем слайс на три части
	less := shiftSlice{}
	equal := shiftSlice{}
	greater := shiftSlice{}

	for _, shift := range s {
		if shift.Start < pivot.Start {
			less = append(less, shift)
		} else if shift.Start == pivot.Start {
			equal = append(equal, shift)
		} else {
			greater = append(greater, shift)
		}
	}

	// Рекурсивно сортируем подмассивы и объединяем их
	return append(append(less.quickSort(), equal...), greater.quickSort()...)
}

type periodSlice []domain.DateTimePeriod

// При равном начале более длинный интервал идёт первым:
// так охватывающий интервал всегда предшествует охваченному
func periodBefore(a, b domain.DateTimePeriod) bool {
	if a.StartAt.Equal(b.StartAt) {
		return a.EndAt.After(b.EndAt)
	}
	return a.StartAt.Before(b.StartAt)
}

// quickSort — функция для сортировки занятых интервалов по времени начала
func (s periodSlice) quickSort() periodSlice {
	if len(s) < 2 {
		return s
	}

	pivot := s[len(s)/2]

	less := periodSlice{}
	equal := periodSlice{}
	greater := periodSlice{}

	for _, period := range s {
		if periodBefore(period, pivot) {
			less = append(less, period)
		} else if periodBefore(pivot, period) {
			greater = append(greater, period)
		} else {
			equal = append(equal, period)
		}
	}

	return append(append(less.quickSort(), equal...), greater.quickSort()...)
}
