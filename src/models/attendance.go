package models

import (
	"time"
)

type Attendance struct {
	AttendanceID     string    `firestore:"attendanceId" json:"attendanceId"`
	EventID          string    `firestore:"eventId" json:"eventId"`
	UserID           string    `firestore:"userId" json:"userId"`
	Timestamp        time.Time `firestore:"timestamp,serverTimestamp" json:"timestamp"`
	AttendanceStatus string    `firestore:"attendanceStatus,omitempty" json:"attendanceStatus,omitempty"`
	PaymentStatus    string    `firestore:"paymentStatus,omitempty" json:"paymentStatus,omitempty"`
}
