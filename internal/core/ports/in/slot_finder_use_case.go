package in

import (
	"context"
	"time"

	"github.com/dbondarchuk/vivid-availability/internal/core/domain"
	"github.com/google/uuid"
)

type SlotFinderUseCase interface {
	// Поиск доступных слотов для одного календаря
	FindSlots(ctx context.Context, calendarID uuid.UUID, configuration domain.TimeSlotsFinderConfiguration, from, to time.Time) ([]domain.TimeSlot, error)

	// Сброс кэша занятых интервалов при изменении событий календаря
	InvalidateCalendarCache(ctx context.Context, calendarID uuid.UUID) error
	InvalidateAllCalendarCache(ctx context.Context) error
}
