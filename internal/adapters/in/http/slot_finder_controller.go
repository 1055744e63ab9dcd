package http

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dbondarchuk/vivid-availability/internal/config"
	"github.com/dbondarchuk/vivid-availability/internal/core/domain"
	"github.com/dbondarchuk/vivid-availability/internal/core/ports/in"
)

type SlotFinderController struct {
	useCase in.SlotFinderUseCase
	cfg     *config.Config
}

func NewSlotFinderController(useCase in.SlotFinderUseCase, cfg *config.Config) *SlotFinderController {
	return &SlotFinderController{
		useCase: useCase,
		cfg:     cfg,
	}
}

func (c *SlotFinderController) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", c.health)

	api := router.Group("/api/v1")
	api.Use(c.basicAuth())
	{
		api.POST("/slots/find/:calendarId", c.findSlots)
	}
}

type FindSlotsRequest struct {
	Configuration domain.TimeSlotsFinderConfiguration `json:"configuration" binding:"required"`
	From          string                              `json:"from" binding:"required"`
	To            string                              `json:"to" binding:"required"`
}

func (c *SlotFinderController) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": c.cfg.App.Version,
	})
}

func (c *SlotFinderController) findSlots(ctx *gin.Context) {
	calendarID, err := uuid.Parse(ctx.Param("calendarId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid calendar ID format"})
		return
	}

	var req FindSlotsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	from, err := time.Parse(time.RFC3339, req.From)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date format"})
		return
	}

	to, err := time.Parse(time.RFC3339, req.To)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date format"})
		return
	}

	slots, err := c.useCase.FindSlots(ctx.Request.Context(), calendarID, req.Configuration, from, to)
	if err != nil {
		var finderErr *domain.TimeSlotsFinderError
		if errors.As(err, &finderErr) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": finderErr.Error()})
			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"calendarId": calendarID,
		"slots":      slots,
	})
}

func (c *SlotFinderController) basicAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		username, password, hasAuth := ctx.Request.BasicAuth()
		if !hasAuth {
			ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		for _, client := range c.cfg.Auth.BasicClients {
			if subtle.ConstantTimeCompare([]byte(username), []byte(client.Username)) == 1 &&
				subtle.ConstantTimeCompare([]byte(password), []byte(client.Password)) == 1 {
				ctx.Next()
				return
			}
		}

		ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
		ctx.AbortWithStatus(http.StatusUnauthorized)
	}
}
