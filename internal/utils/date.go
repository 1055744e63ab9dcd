package utils

import (
	"fmt"
	"time"
)

// StartCurrentDay возвращает новую дату, где время установлено на 00:00, а таймзона остается прежней.
func StartCurrentDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartNextDay возвращает новую дату, где день увеличен на 1, время установлено на 00:00, а таймзона остается прежней.
func StartNextDay(t time.Time) time.Time {
	// Увеличиваем день на 1
	newDate := t.AddDate(0, 0, 1)
	// Устанавливаем время на 00:00
	newDate = time.Date(newDate.Year(), newDate.Month(), newDate.Day(), 0, 0, 0, 0, newDate.Location())
	return newDate
}

// ISODate возвращает дату в формате YYYY-MM-DD, по такой строке ищутся смены в расписании
func ISODate(t time.Time) string {
	return t.Format("2006-01-02")
}

// RoundUpToMinute округляет время вверх до целой минуты.
// Если секунды и наносекунды нулевые, время не меняется.
func RoundUpToMinute(t time.Time) time.Time {
	if t.Second() == 0 && t.Nanosecond() == 0 {
		return t
	}
	return t.Truncate(time.Minute).Add(time.Minute)
}

// ParseDate парсит дату из строки в формате RFC3339, если не удается, то пробует парсить дату со временем, но без таймзоны
func ParseDate(str string, location *time.Location) (time.Time, error) {
	parsedDate, err := time.Parse(time.RFC3339, str)
	// Если не удалось пробуем дату со временем, но без таймзоны
	if err != nil {
		parsedDate, err = time.ParseInLocation("2006-01-02T15:04:05", str, location)
		if err != nil {
			// Если не удалось, пробуем как дату без времени
			parsedDate, err = time.ParseInLocation("2006-01-02", str, location)
			if err != nil {
				return time.Time{}, fmt.Errorf("failed to parse time: %v", err)
			}
		}
	}

	return parsedDate, nil
}
