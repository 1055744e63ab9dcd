package cache

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dbondarchuk/vivid-availability/internal/config"
	"github.com/dbondarchuk/vivid-availability/internal/core/domain"
	"github.com/dbondarchuk/vivid-availability/internal/core/ports/out"
)

type EventsCacheEntry struct {
	Events    []domain.DateTimePeriod
	StartDate time.Time
	EndDate   time.Time
}

type LRUCacheAdapter struct {
	cache  *lru.Cache[uuid.UUID, *EventsCacheEntry]
	mu     sync.RWMutex
	logger out.LoggerPort
}

func NewLRUCacheAdapter(cfg *config.Config, logger out.LoggerPort) (*LRUCacheAdapter, error) {
	if !cfg.Cache.Enabled {
		logger.Info("cache.disabled", out.LogFields{
			"message": "Cache is disabled",
		})
		return nil, nil
	}

	cache, err := lru.New[uuid.UUID, *EventsCacheEntry](cfg.Cache.EventsSize)
	if err != nil {
		logger.Error("cache.init.failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Cache.EventsSize,
		})
		return nil, err
	}

	return &LRUCacheAdapter{
		cache:  cache,
		logger: logger.WithModule("CacheAdapter"),
	}, nil
}

func (c *LRUCacheAdapter) GetEvents(ctx context.Context, calendarID uuid.UUID, startDate, endDate time.Time) ([]domain.DateTimePeriod, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.cache.Get(calendarID)
	if !exists {
		c.logger.Debug("cache.get.miss", out.LogFields{
			"calendarId": calendarID,
		})
		return nil, false
	}

	// Кэш пригоден только если покрывает весь запрошенный диапазон
	if startDate.Before(entry.StartDate) || endDate.After(entry.EndDate) {
		c.logger.Debug("cache.get.date_range_mismatch", out.LogFields{
			"calendarId":     calendarID,
			"requestedStart": startDate,
			"requestedEnd":   endDate,
			"cachedStart":    entry.StartDate,
			"cachedEnd":      entry.EndDate,
		})
		return nil, false
	}

	c.logger.Debug("cache.get.hit", out.LogFields{
		"calendarId":  calendarID,
		"eventsCount": len(entry.Events),
	})
	return entry.Events, true
}

func (c *LRUCacheAdapter) StoreEvents(ctx context.Context, calendarID uuid.UUID, startDate, endDate time.Time, events []domain.DateTimePeriod) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger.Debug("cache.store", out.LogFields{
		"calendarId":  calendarID,
		"eventsCount": len(events),
	})

	c.cache.Add(calendarID, &EventsCacheEntry{
		Events:    events,
		StartDate: startDate,
		EndDate:   endDate,
	})
}

func (c *LRUCacheAdapter) InvalidateEvents(ctx context.Context, calendarID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger.Debug("cache.invalidate", out.LogFields{
		"calendarId": calendarID,
	})

	c.cache.Remove(calendarID)
}

func (c *LRUCacheAdapter) InvalidateAllEvents(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger.Debug("cache.invalidate_all", out.LogFields{})

	c.cache.Purge()
}
