package out

import (
	"context"
	"time"

	"github.com/dbondarchuk/vivid-availability/internal/core/domain"
	"github.com/google/uuid"
)

// CalendarPort — поставщик занятых интервалов из внешних календарей.
// Движок поиска сам события не загружает, он получает их уже материализованными.
type CalendarPort interface {
	GetBusyEvents(ctx context.Context, calendarID uuid.UUID, from, to time.Time) ([]domain.DateTimePeriod, error)
}
