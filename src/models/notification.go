package models

import (
	"time"
)

type Notification struct {
	NotificationID string         `firestore:"notification_id" json:"notification_id"`
	Title          string         `firestore:"title" json:"title"`
	Body           string         `firestore:"body,omitempty" json:"body,omitempty"`
	Topic          string         `firestore:"topic,omitempty" json:"topic,omitempty"`
	Data           map[string]any `firestore:"data,omitempty" json:"data,omitempty"`
	CreatedAt      time.Time      `firestore:"createdAt,serverTimestamp" json:"createdAt"`
}
