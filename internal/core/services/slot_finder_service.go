package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dbondarchuk/vivid-availability/internal/core/domain"
	"github.com/dbondarchuk/vivid-availability/internal/core/ports/out"
	"github.com/dbondarchuk/vivid-availability/internal/core/services/slot_finder_service"
	"github.com/google/uuid"
)

type SlotFinderService struct {
	calendarPort out.CalendarPort
	cachePort    out.CachePort
	logger       out.LoggerPort
}

func NewSlotFinderService(
	calendarPort out.CalendarPort,
	cachePort out.CachePort,
	logger out.LoggerPort,
) *SlotFinderService {
	return &SlotFinderService{
		calendarPort: calendarPort,
		cachePort:    cachePort,
		logger:       logger.WithModule("SlotFinderService"),
	}
}

func (s *SlotFinderService) FindSlots(ctx context.Context, calendarID uuid.UUID, configuration domain.TimeSlotsFinderConfiguration, from, to time.Time) ([]domain.TimeSlot, error) {
	s.logger.Info("slots.find.started", out.LogFields{
		"calendarId": calendarID,
		"from":       from,
		"to":         to,
	})

	fetchDebug := domain.DebugInfo{
		Event: "slots.find.calendar.fetch",
	}
	fetchDebug.Start()

	calendarEvents, err := s.busyEvents(ctx, calendarID, from, to)
	if err != nil {
		s.logger.Error("slots.find.calendar.fetch_failed", out.LogFields{
			"calendarId": calendarID,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("slots.find.calendar.fetch_failed: %w", err)
	}
	fetchDebug.Elapse()

	searchDebug := domain.DebugInfo{
		Event: "slots.find.search",
	}
	searchDebug.Start()

	timeSlots, err := slot_finder_service.FindAvailableTimeSlots(calendarEvents, configuration, from, to)
	if err != nil {
		s.logger.Warn("slots.find.rejected", out.LogFields{
			"calendarId": calendarID,
			"error":      err.Error(),
		})
		return nil, err
	}
	searchDebug.Elapse()

	s.logger.Info("slots.find.finished", out.LogFields{
		"calendarId":  calendarID,
		"slotsCount":  len(timeSlots),
		"eventsCount": len(calendarEvents),
		"fetchMs":     fetchDebug.Timing,
		"searchMs":    searchDebug.Timing,
	})

	return timeSlots, nil
}

// busyEvents достаёт занятые интервалы календаря из кэша,
// а при промахе — из внешнего провайдера
func (s *SlotFinderService) busyEvents(ctx context.Context, calendarID uuid.UUID, from, to time.Time) ([]domain.DateTimePeriod, error) {
	if s.cachePort != nil {
		if events, exists := s.cachePort.GetEvents(ctx, calendarID, from, to); exists {
			s.logger.Debug("slots.find.cache.hit", out.LogFields{
				"calendarId":  calendarID,
				"eventsCount": len(events),
			})
			return events, nil
		}
	}

	s.logger.Debug("slots.find.cache.miss", out.LogFields{
		"calendarId": calendarID,
	})

	events, err := s.calendarPort.GetBusyEvents(ctx, calendarID, from, to)
	if err != nil {
		return nil, err
	}

	if s.cachePort != nil {
		s.cachePort.StoreEvents(ctx, calendarID, from, to, events)
	}

	return events, nil
}

func (s *SlotFinderService) InvalidateCalendarCache(ctx context.Context, calendarID uuid.UUID) error {
	if s.cachePort == nil {
		return nil
	}

	s.cachePort.InvalidateEvents(ctx, calendarID)
	s.logger.Debug("calendar.cache.invalidated", out.LogFields{
		"calendarId": calendarID,
	})

	return nil
}

func (s *SlotFinderService) InvalidateAllCalendarCache(ctx context.Context) error {
	if s.cachePort == nil {
		return nil
	}

	s.cachePort.InvalidateAllEvents(ctx)
	s.logger.Debug("calendar.cache.invalidated_all", out.LogFields{})

	return nil
}
