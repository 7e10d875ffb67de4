package notification

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"physioheal/models"
)

// SendBookingNotification renders and sends the staff email for one booking.
func (s *MailNotificationService) SendBookingNotification(ctx context.Context, record models.BookingRecord) error {
	if s.Host == "" || s.To == "" {
		s.Logger.Warn("SendBookingNotification: SMTP not configured, skipping email",
			zap.String("bookingID", record.ID))
		return nil
	}

	body, err := renderBookingEmail(record)
	if err != nil {
		return fmt.Errorf("SendBookingNotification: render email for booking %s: %w", record.ID, err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.To)
	m.SetHeader("Subject", bookingEmailSubject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.Host, s.Port, s.Username, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("SendBookingNotification: send email for booking %s: %w", record.ID, err)
	}

	s.Logger.Info("SendBookingNotification: email sent", zap.String("bookingID", record.ID))
	return nil
}
