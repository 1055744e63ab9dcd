package out

import (
	"context"
	"time"

	"github.com/dbondarchuk/vivid-availability/internal/core/domain"
	"github.com/google/uuid"
)

type CachePort interface {
	// Кэширование занятых интервалов календаря
	GetEvents(ctx context.Context, calendarID uuid.UUID, startDate, endDate time.Time) ([]domain.DateTimePeriod, bool)
	StoreEvents(ctx context.Context, calendarID uuid.UUID, startDate, endDate time.Time, events []domain.DateTimePeriod)
	InvalidateEvents(ctx context.Context, calendarID uuid.UUID)
	InvalidateAllEvents(ctx context.Context)
}
