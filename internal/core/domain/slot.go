package domain

import "time"

// TimeSlot — доступный для бронирования слот.
// Времена приведены к UTC, Duration — длительность в минутах.
type TimeSlot struct {
	StartAt  time.Time `json:"startAt"`
	EndAt    time.Time `json:"endAt"`
	Duration int       `json:"duration"`
}
