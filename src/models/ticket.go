package models

type Ticket struct {
	TicketID   string  `firestore:"ticketId" json:"ticketId"`
	EventID    string  `firestore:"eventId" json:"eventId"`
	UserID     string  `firestore:"userId" json:"userId"`
	Seat       string  `firestore:"seat,omitempty" json:"seat,omitempty"`
	TicketType string  `firestore:"ticketType,omitempty" json:"ticketType,omitempty"`
	Quantity   int64   `firestore:"quantity" json:"quantity"`
	TotalPrice float64 `firestore:"totalPrice" json:"totalPrice"`
	Status     string  `firestore:"status" json:"status"`
	Barcode    string  `firestore:"barcode,omitempty" json:"barcode,omitempty"`
	Qrcode     string  `firestore:"qrcode,omitempty" json:"qrcode,omitempty"`
}
