package domain

import "fmt"

// TimeSlotsFinderError — единственный вид ошибки движка поиска слотов.
// Все нарушения конфигурации и границ поиска сообщаются этим типом,
// различаются они только текстом причины.
type TimeSlotsFinderError struct {
	Reason string
}

func NewTimeSlotsFinderError(format string, args ...interface{}) *TimeSlotsFinderError {
	return &TimeSlotsFinderError{Reason: fmt.Sprintf(format, args...)}
}

func (e *TimeSlotsFinderError) Error() string {
	return e.Reason
}
