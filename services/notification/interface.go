package notification

import (
	"context"

	"go.uber.org/zap"

	"physioheal/config"
	"physioheal/models"
)

// NotificationService delivers staff notifications for new bookings. Delivery
// failures never affect the outcome of the booking itself.
type NotificationService interface {
	SendBookingNotification(ctx context.Context, record models.BookingRecord) error
}

// MailNotificationService sends HTML email over SMTP.
type MailNotificationService struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
	Logger   *zap.Logger
}

// NewMailNotificationService builds the mail service from app config.
func NewMailNotificationService(logger *zap.Logger) *MailNotificationService {
	cfg := config.AppConfig
	return &MailNotificationService{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPass,
		From:     cfg.EmailFrom,
		To:       cfg.EmailTo,
		Logger:   logger,
	}
}
