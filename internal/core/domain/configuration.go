package domain

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/dbondarchuk/vivid-availability/internal/core/json_types"
)

type SlotStartKind string

const (
	SlotStartFixedStep SlotStartKind = "fixed-step"
	SlotStartEveryHour SlotStartKind = "every-hour"
	SlotStartCustom    SlotStartKind = "custom"
)

// SlotStart — правило выбора допустимых начал слота.
// В JSON это число (шаг в минутах, 1-30) или строка "every-hour" / "custom".
type SlotStart struct {
	Kind SlotStartKind
	Step int
}

func (s *SlotStart) UnmarshalJSON(data []byte) error {
	str := string(data)

	// Число — фиксированный шаг в минутах
	if step, err := strconv.Atoi(str); err == nil {
		*s = SlotStart{Kind: SlotStartFixedStep, Step: step}
		return nil
	}

	var kind string
	if err := json.Unmarshal(data, &kind); err != nil {
		return fmt.Errorf("failed to parse slot start: %v", err)
	}

	switch SlotStartKind(kind) {
	case SlotStartEveryHour:
		*s = SlotStart{Kind: SlotStartEveryHour}
	case SlotStartCustom:
		*s = SlotStart{Kind: SlotStartCustom}
	default:
		return fmt.Errorf("unknown slot start kind: %q", kind)
	}
	return nil
}

func (s SlotStart) MarshalJSON() ([]byte, error) {
	if s.Kind == SlotStartFixedStep {
		return json.Marshal(s.Step)
	}
	return json.Marshal(string(s.Kind))
}

// TimeSlotsFinderConfiguration — полный набор входных параметров поиска слотов.
// Нулевые значения опциональных полей совпадают с их значениями по умолчанию:
// буферы 0 минут, MaxDaysBeforeLastSlot == 0 — без ограничения по дням.
type TimeSlotsFinderConfiguration struct {
	Schedule                   Schedule          `json:"schedule"`
	UnavailablePeriods         []TimeSlotPeriod  `json:"unavailablePeriods,omitempty"`
	TimeZone                   string            `json:"timeZone"`
	TimeSlotDuration           int               `json:"timeSlotDuration"`
	SlotStart                  SlotStart         `json:"slotStart"`
	CustomSlots                []json_types.Time `json:"customSlots,omitempty"`
	MinAvailableTimeBeforeSlot int               `json:"minAvailableTimeBeforeSlot,omitempty"`
	MinAvailableTimeAfterSlot  int               `json:"minAvailableTimeAfterSlot,omitempty"`
	MinTimeBeforeFirstSlot     int               `json:"minTimeBeforeFirstSlot,omitempty"`
	MaxDaysBeforeLastSlot      int               `json:"maxDaysBeforeLastSlot,omitempty"`
}
