package notification

import (
	"context"
	"fmt"

	"goodrunss/services/player"
	"goodrunss/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// NotificationService defines methods for sending FCM pushes.
type NotificationService interface {
	SendPlayerPush(ctx context.Context, playerID, title, body string, data map[string]string) error
	NotifyBookingReminder(ctx context.Context, playerID, bookingID, title, body string) error
}

// DefaultNotificationService is the production implementation. It is
// constructed once at startup and injected wherever pushes are sent.
type DefaultNotificationService struct {
	Players player.PlayerService
	FCM     *messaging.Client
}

func NewDefaultNotificationService(players player.PlayerService, fcm *messaging.Client) (*DefaultNotificationService, error) {
	if players == nil || fcm == nil {
		return nil, fmt.Errorf("notification service initialization error: player service or FCM client is nil")
	}
	return &DefaultNotificationService{Players: players, FCM: fcm}, nil
}

// SendPlayerPush looks up a player's FCM token and sends a push.
func (s *DefaultNotificationService) SendPlayerPush(ctx context.Context, playerID, title, body string, data map[string]string) error {
	p, err := s.Players.GetByID(playerID)
	if err != nil {
		return fmt.Errorf("SendPlayerPush: could not find player %s: %w", playerID, err)
	}
	if p.FCMToken == "" {
		return fmt.Errorf("SendPlayerPush: player %s has no FCM token", playerID)
	}

	msg := &messaging.Message{
		Token: p.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	response, err := s.FCM.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("SendPlayerPush: failed to send FCM message: %w", err)
	}

	utils.GetLogger().Info("SendPlayerPush: message sent", zap.String("response", response))
	return nil
}

// NotifyBookingReminder sends a reminder push for an upcoming booking.
func (s *DefaultNotificationService) NotifyBookingReminder(ctx context.Context, playerID, bookingID, title, body string) error {
	data := map[string]string{
		"type":      "booking_reminder",
		"bookingId": bookingID,
	}
	return s.SendPlayerPush(ctx, playerID, title, body, data)
}
