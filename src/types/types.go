package types

type Status string

const (
	TICKET_PENDING   Status = "pending"
	TICKET_CONFIRMED Status = "confirmed"
	TICKET_CANCELED  Status = "canceled"

	PAYMENT_PAID     Status = "paid"
	PAYMENT_PENDING  Status = "pending"
	PAYMENT_REFUNDED Status = "refunded"
)

type SimpleRequestParams struct {
	ID string `uri:"id" binding:"required"`
}

type UserRequestParams struct {
	UserID string `uri:"userId" binding:"required"`
}

type OrganizerInput struct {
	OrganizerID string `json:"organizerId" binding:"required"`
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
}

type CreateEventRequestBody struct {
	Title               string         `json:"title" binding:"required"`
	Date                string         `json:"date" binding:"required,eventdate"`
	Time                string         `json:"time,omitempty"`
	Location            string         `json:"location,omitempty"`
	Price               float64        `json:"price,omitempty"`
	Description         string         `json:"description,omitempty"`
	Agenda              []string       `json:"agenda,omitempty"`
	Images              []string       `json:"images,omitempty"`
	TicketsLeft         int64          `json:"ticketsLeft,omitempty"`
	Category            string         `json:"category,omitempty"`
	TotalCapacityNeeded int64          `json:"totalCapacityNeeded,omitempty"`
	Organizer           OrganizerInput `json:"organizer" binding:"required"`
}

type CreateUserRequestBody struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

type BatchCreateUsersRequestBody struct {
	Users []CreateUserRequestBody `json:"users" binding:"required,min=1,dive"`
}

type PurchaseTicketRequestBody struct {
	EventID    string  `json:"eventId" binding:"required"`
	UserID     string  `json:"userId" binding:"required"`
	Seat       string  `json:"seat,omitempty"`
	TicketType string  `json:"ticketType,omitempty"`
	Quantity   int64   `json:"quantity" binding:"required,min=1"`
	TotalPrice float64 `json:"totalPrice,omitempty"`
}

type UpdateTicketStatusRequestBody struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed canceled"`
}

type CreatePaymentRequestBody struct {
	UserID      string  `json:"userId" binding:"required"`
	EventID     string  `json:"eventId" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Status      string  `json:"status" binding:"required"`
	PaymentType string  `json:"paymentType,omitempty"`
}

type CreateAttendanceRequestBody struct {
	EventID          string `json:"eventId" binding:"required"`
	UserID           string `json:"userId" binding:"required"`
	AttendanceStatus string `json:"attendanceStatus,omitempty"`
	PaymentStatus    string `json:"paymentStatus,omitempty"`
}

type ToggleFavoriteRequestBody struct {
	UserID  string `json:"userId" binding:"required"`
	EventID string `json:"eventId" binding:"required"`
}

type CreateNotificationRequestBody struct {
	Title string         `json:"title" binding:"required"`
	Body  string         `json:"body,omitempty"`
	Topic string         `json:"topic,omitempty"`
	Data  map[string]any `json:"data,omitempty"`
}

type EventStatistics struct {
	TotalTickets    int64   `json:"totalTickets"`
	SoldTickets     int64   `json:"soldTickets"`
	CanceledTickets int64   `json:"canceledTickets"`
	TotalRevenue    float64 `json:"totalRevenue"`
}

type OrganizerKPIs struct {
	TotalRevenue           float64 `json:"totalRevenue"`
	TotalSoldTickets       int64   `json:"totalSoldTickets"`
	TotalEvents            int64   `json:"totalEvents"`
	BestTicketType         string  `json:"bestTicketType"`
	BestTicketTypeQuantity int64   `json:"bestTicketTypeQuantity"`
}
