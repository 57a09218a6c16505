package models

import (
	"time"
)

type Payment struct {
	PaymentID   string    `firestore:"paymentId" json:"paymentId"`
	UserID      string    `firestore:"userId" json:"userId"`
	EventID     string    `firestore:"eventId" json:"eventId"`
	Amount      float64   `firestore:"amount" json:"amount"`
	Status      string    `firestore:"status" json:"status"`
	PaymentType string    `firestore:"paymentType,omitempty" json:"paymentType,omitempty"`
	Timestamp   time.Time `firestore:"timestamp,serverTimestamp" json:"timestamp"`
}
