package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	bookingRepo "physioheal/database/repository/booking"
	"physioheal/models"
	"physioheal/utils"
)

// NotificationQueue schedules the staff email for a persisted booking.
type NotificationQueue interface {
	EnqueueBookingEmail(record models.BookingRecord) error
}

// BookingHandler serves the booking intake endpoints.
type BookingHandler struct {
	Repo   bookingRepo.BookingRepository
	Queue  NotificationQueue
	Cache  *redis.Client
	Logger *zap.Logger
}

// NewBookingHandler creates a new BookingHandler. Cache may be nil, in which
// case idempotency replay is disabled.
func NewBookingHandler(repo bookingRepo.BookingRepository, queue NotificationQueue, cache *redis.Client, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Repo: repo, Queue: queue, Cache: cache, Logger: logger}
}

// CreateBookingHandler persists an intake submission and schedules the staff
// notification. Notification dispatch is fire-and-forget: the client gets 201
// as soon as the record is stored, regardless of email outcome.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()

	// Replay a previously stored record when the client retries with the
	// same idempotency key, so duplicate submissions cannot occur.
	idemKey := c.GetHeader(utils.IdempotencyKeyHeader)
	if idemKey != "" && h.Cache != nil {
		if cached, err := h.Cache.Get(ctx, utils.IdempotencyCachePrefix+idemKey).Result(); err == nil {
			var record models.BookingRecord
			if err := json.Unmarshal([]byte(cached), &record); err == nil {
				h.Logger.Info("Replaying booking for repeated idempotency key",
					zap.String("bookingID", record.ID))
				c.JSON(http.StatusOK, record)
				return
			}
		}
	}

	record, err := h.Repo.Create(ctx, input)
	if err != nil {
		h.Logger.Error("Failed to create booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating booking", "error": err.Error()})
		return
	}

	if idemKey != "" && h.Cache != nil {
		if data, err := json.Marshal(record); err == nil {
			if err := h.Cache.Set(ctx, utils.IdempotencyCachePrefix+idemKey, data, utils.IdempotencyCacheTTL).Err(); err != nil {
				h.Logger.Warn("Failed to cache booking for idempotency replay", zap.Error(err))
			}
		}
	}

	if h.Queue != nil {
		if err := h.Queue.EnqueueBookingEmail(*record); err != nil {
			h.Logger.Error("Failed to enqueue booking notification",
				zap.String("bookingID", record.ID), zap.Error(err))
		}
	}

	c.JSON(http.StatusCreated, record)
}

// ListBookingsHandler returns all bookings, newest first.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	records, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		h.Logger.Error("Failed to fetch bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching bookings", "error": err.Error()})
		return
	}
	if records == nil {
		records = []models.BookingRecord{}
	}
	c.JSON(http.StatusOK, records)
}
