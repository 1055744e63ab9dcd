package domain

import "time"

// PeriodMoment — момент недоступного периода.
// Year == 0 означает, что период повторяется каждый год.
// Hour == nil означает начало дня для начала периода и конец дня для конца периода.
type PeriodMoment struct {
	Year   int        `json:"year,omitempty"`
	Month  time.Month `json:"month"`
	Day    int        `json:"day"`
	Hour   *int       `json:"hour,omitempty"`
	Minute int        `json:"minute,omitempty"`
}

// Recurring сообщает, задан ли момент без года
func (m PeriodMoment) Recurring() bool {
	return m.Year == 0
}

// TimeSlotPeriod — недоступный период (отпуск, праздник и т.п.),
// убирающий доступность поверх расписания смен.
// Либо оба момента с годом, либо оба без года.
type TimeSlotPeriod struct {
	StartAt PeriodMoment `json:"startAt"`
	EndAt   PeriodMoment `json:"endAt"`
}

// DateTimePeriod — конкретный занятый интервал: событие календаря
// или материализованный недоступный период.
type DateTimePeriod struct {
	StartAt time.Time `json:"startAt"`
	EndAt   time.Time `json:"endAt"`
}
