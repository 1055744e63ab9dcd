package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dbondarchuk/vivid-availability/internal/config"
	"github.com/dbondarchuk/vivid-availability/internal/core/domain"
	"github.com/dbondarchuk/vivid-availability/internal/core/json_types"
	"github.com/dbondarchuk/vivid-availability/internal/core/ports/out"
)

type CalendarAdapter struct {
	client   *http.Client
	baseURL  string
	username string
	password string
	logger   out.LoggerPort
}

// busyEventResource - формат события занятости, который отдает календарный сервис
type busyEventResource struct {
	ID      string                     `json:"id"`
	StartAt json_types.DateTime        `json:"startAt"`
	EndAt   json_types.DateTimeOrEmpty `json:"endAt"`
	Status  string                     `json:"status"`
}

type busyEventsResponse struct {
	CalendarID string              `json:"calendarId"`
	Events     []busyEventResource `json:"events"`
}

func NewCalendarAdapter(cfg *config.Config, logger out.LoggerPort) *CalendarAdapter {
	return &CalendarAdapter{
		client:   &http.Client{Timeout: 10 * time.Second},
		baseURL:  cfg.Calendar.URL,
		username: cfg.Calendar.Username,
		password: cfg.Calendar.Password,
		logger:   logger,
	}
}

func (a *CalendarAdapter) GetBusyEvents(ctx context.Context, calendarID uuid.UUID, from, to time.Time) ([]domain.DateTimePeriod, error) {
	a.logger.Info("calendar.busy_events.fetch", out.LogFields{
		"calendarId": calendarID,
		"from":       from.Format(time.RFC3339),
		"to":         to.Format(time.RFC3339),
	})

	url := fmt.Sprintf("%s/calendars/%s/busy", a.baseURL, calendarID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		a.logger.Error("calendar.busy_events.fetch_failed", out.LogFields{
			"calendarId": calendarID,
			"error":      err.Error(),
		})
		return nil, err
	}

	query := req.URL.Query()
	query.Set("start", from.UTC().Format(time.RFC3339))
	query.Set("end", to.UTC().Format(time.RFC3339))
	req.URL.RawQuery = query.Encode()

	req.SetBasicAuth(a.username, a.password)

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Error("calendar.busy_events.fetch_failed", out.LogFields{
			"calendarId": calendarID,
			"error":      err.Error(),
		})
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		a.logger.Error("calendar.busy_events.fetch_failed", out.LogFields{
			"calendarId": calendarID,
			"status":     resp.StatusCode,
		})
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var response busyEventsResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		a.logger.Error("calendar.busy_events.decode_failed", out.LogFields{
			"calendarId": calendarID,
			"error":      err.Error(),
		})
		return nil, err
	}

	events := make([]domain.DateTimePeriod, 0, len(response.Events))
	for _, resource := range response.Events {
		if resource.Status == "cancelled" {
			continue
		}

		// Событие без даты окончания не может участвовать в расчетах
		if resource.EndAt.Date.IsZero() {
			a.logger.Warn("calendar.busy_events.skip_open_ended", out.LogFields{
				"calendarId": calendarID,
				"eventId":    resource.ID,
			})
			continue
		}

		events = append(events, domain.DateTimePeriod{
			StartAt: resource.StartAt.Date,
			EndAt:   resource.EndAt.Date,
		})
	}

	a.logger.Debug("calendar.busy_events.fetch_success", out.LogFields{
		"calendarId": calendarID,
		"count":      len(events),
	})

	return events, nil
}
