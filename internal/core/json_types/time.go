package json_types

import (
	"encoding/json"
	"fmt"
	"time"
)

// Time — время внутри дня в формате "HH:MM", без даты и таймзоны
type Time struct {
	Time time.Time
}

func (t *Time) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("failed to parse time: %v", err)
	}
	parsedTime, err := time.Parse("15:04", str)
	if err != nil {
		return fmt.Errorf("failed to parse time: %v", err)
	}
	*t = Time{Time: parsedTime}
	return nil
}

func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.Format("15:04"))
}

func (t Time) Hour() int {
	return t.Time.Hour()
}

func (t Time) Minute() int {
	return t.Time.Minute()
}
