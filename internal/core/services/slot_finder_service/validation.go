package slot_finder_service

import (
	"regexp"
	"time"

	"github.com/dbondarchuk/vivid-availability/internal/core/domain"
)

var shiftTimeRegexp = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// validateConfiguration проверяет конфигурацию на внутреннюю согласованность.
// Проверки выполняются по порядку, возвращается первая найденная ошибка,
// поиск при этом не начинается.
func validateConfiguration(configuration domain.TimeSlotsFinderConfiguration) error {
	if configuration.TimeSlotDuration < 1 {
		return domain.NewTimeSlotsFinderError("time slot duration must be at least 1 minute, got %d", configuration.TimeSlotDuration)
	}

	if configuration.SlotStart.Kind == domain.SlotStartCustom && len(configuration.CustomSlots) == 0 {
		return domain.NewTimeSlotsFinderError(`custom slots must be provided when slot start is "custom"`)
	}

	switch configuration.SlotStart.Kind {
	case domain.SlotStartFixedStep:
		if configuration.SlotStart.Step < 1 || configuration.SlotStart.Step > 30 {
			return domain.NewTimeSlotsFinderError("slot start step must be between 1 and 30 minutes, got %d", configuration.SlotStart.Step)
		}
	case domain.SlotStartEveryHour, domain.SlotStartCustom:
	default:
		return domain.NewTimeSlotsFinderError("unknown slot start kind: %q", configuration.SlotStart.Kind)
	}

	if configuration.MinAvailableTimeBeforeSlot < 0 {
		return domain.NewTimeSlotsFinderError("min available time before slot must not be negative")
	}
	if configuration.MinAvailableTimeAfterSlot < 0 {
		return domain.NewTimeSlotsFinderError("min available time after slot must not be negative")
	}
	if configuration.MinTimeBeforeFirstSlot < 0 {
		return domain.NewTimeSlotsFinderError("min time before first slot must not be negative")
	}

	if configuration.MaxDaysBeforeLastSlot < 0 {
		return domain.NewTimeSlotsFinderError("max days before last slot must be at least 1 day")
	}

	if configuration.TimeZone == "" {
		return domain.NewTimeSlotsFinderError("time zone must be provided")
	}
	if _, err := time.LoadLocation(configuration.TimeZone); err != nil {
		return domain.NewTimeSlotsFinderError("invalid time zone: %q", configuration.TimeZone)
	}

	// При таком сочетании ни один слот не может существовать:
	// первый допустимый слот начинается позже последнего разрешённого дня
	if configuration.MaxDaysBeforeLastSlot > 0 &&
		float64(configuration.MinTimeBeforeFirstSlot)/(24*60) > float64(configuration.MaxDaysBeforeLastSlot) {
		return domain.NewTimeSlotsFinderError("min time before first slot exceeds max days before last slot")
	}

	if len(configuration.Schedule) == 0 {
		return domain.NewTimeSlotsFinderError("schedule must be provided")
	}
	for date, shifts := range configuration.Schedule {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return domain.NewTimeSlotsFinderError("invalid schedule date: %q", date)
		}
		for _, shift := range shifts {
			if err := validateShift(date, shift); err != nil {
				return err
			}
		}
	}

	for _, period := range configuration.UnavailablePeriods {
		if err := validateUnavailablePeriod(period); err != nil {
			return err
		}
	}

	return nil
}

func validateShift(date string, shift domain.Shift) error {
	if !shiftTimeRegexp.MatchString(shift.Start) || !shiftTimeRegexp.MatchString(shift.End) {
		return domain.NewTimeSlotsFinderError("invalid shift time format for %s: %s - %s", date, shift.Start, shift.End)
	}
	// Для "HH:MM" с ведущими нулями лексикографическое сравнение хронологическое
	if shift.End <= shift.Start {
		return domain.NewTimeSlotsFinderError("shift end must be after its start for %s: %s - %s", date, shift.Start, shift.End)
	}
	return nil
}

func validateUnavailablePeriod(period domain.TimeSlotPeriod) error {
	if period.StartAt.Recurring() != period.EndAt.Recurring() {
		return domain.NewTimeSlotsFinderError("unavailable period must have a year on both moments or on neither")
	}

	if err := validatePeriodMoment(period.StartAt); err != nil {
		return err
	}
	return validatePeriodMoment(period.EndAt)
}

func validatePeriodMoment(moment domain.PeriodMoment) error {
	if moment.Month < time.January || moment.Month > time.December {
		return domain.NewTimeSlotsFinderError("unavailable period month out of range: %d", moment.Month)
	}

	if moment.Day < 1 || moment.Day > daysInMonth(moment.Year, moment.Month) {
		return domain.NewTimeSlotsFinderError("unavailable period day out of range: %d", moment.Day)
	}

	if moment.Hour != nil && (*moment.Hour < 0 || *moment.Hour > 23) {
		return domain.NewTimeSlotsFinderError("unavailable period hour out of range: %d", *moment.Hour)
	}
	if moment.Minute < 0 || moment.Minute > 59 {
		return domain.NewTimeSlotsFinderError("unavailable period minute out of range: %d", moment.Minute)
	}

	return nil
}

// daysInMonth считает дни в месяце; для повторяющихся периодов без года
// берём високосный год, чтобы 29 февраля оставалось допустимым
func daysInMonth(year int, month time.Month) int {
	if year == 0 {
		year = 2000
	}
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
