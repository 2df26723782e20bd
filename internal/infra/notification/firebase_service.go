package notification

import (
	"context"

	"automarket/internal/domain/service"
	"automarket/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// messageSender is the part of the FCM client the notifier uses
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseNotifier struct {
	client      messageSender
	deviceToken string
}

// NewFirebaseNotifier creates a push notifier sending to the seller's registered device
func NewFirebaseNotifier(ctx context.Context, projectID, credentialsPath, deviceToken string) (service.Notifier, error) {
	if deviceToken == "" {
		return nil, errors.New("firebase device token is required")
	}

	var conf *firebase.Config
	if projectID != "" {
		conf = &firebase.Config{ProjectID: projectID}
	}

	opts := []option.ClientOption{}
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseNotifier{
		client:      client,
		deviceToken: deviceToken,
	}, nil
}

// Notify sends a push notification to the configured device token
func (s *firebaseNotifier) Notify(ctx context.Context, title, message string) error {
	msg := &messaging.Message{
		Token: s.deviceToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  message,
		},
		Data: map[string]string{
			"kind": "paid_orders",
		},
	}

	if _, err := s.client.Send(ctx, msg); err != nil {
		if messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err) {
			return errors.Wrap(err, "device token rejected, register the device again")
		}

		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}
