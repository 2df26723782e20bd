package service

// ActivityRecorder counts agent activity for the metrics endpoint.
type ActivityRecorder interface {
	PollCompleted(awaiting int, err error)
	DeliveryAttempted(success bool)
	NotificationSent(err error)
	BridgeMessage(messageType string, success bool)
}
