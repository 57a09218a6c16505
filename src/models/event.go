package models

import (
	"time"
)

type Organizer struct {
	OrganizerID string `firestore:"organizerId" json:"organizerId"`
	Name        string `firestore:"name,omitempty" json:"name,omitempty"`
	Email       string `firestore:"email,omitempty" json:"email,omitempty"`
}

type Event struct {
	EventID             string    `firestore:"eventId" json:"eventId"`
	Title               string    `firestore:"title" json:"title"`
	Slug                string    `firestore:"slug,omitempty" json:"slug,omitempty"`
	Date                string    `firestore:"date" json:"date"`
	Time                string    `firestore:"time,omitempty" json:"time,omitempty"`
	Location            string    `firestore:"location,omitempty" json:"location,omitempty"`
	Price               float64   `firestore:"price" json:"price"`
	Description         string    `firestore:"description,omitempty" json:"description,omitempty"`
	Agenda              []string  `firestore:"agenda,omitempty" json:"agenda,omitempty"`
	Images              []string  `firestore:"images,omitempty" json:"images,omitempty"`
	TicketsLeft         int64     `firestore:"ticketsLeft" json:"ticketsLeft"`
	Category            string    `firestore:"category,omitempty" json:"category,omitempty"`
	TotalCapacityNeeded int64     `firestore:"totalCapacityNeeded,omitempty" json:"totalCapacityNeeded,omitempty"`
	Organizer           Organizer `firestore:"organizer" json:"organizer"`
	CreatedAt           time.Time `firestore:"createdAt,serverTimestamp" json:"createdAt"`

	// Set per-request when a userId is supplied on listing routes; never
	// persisted.
	IsLiked *bool `firestore:"-" json:"isLiked,omitempty"`
}
