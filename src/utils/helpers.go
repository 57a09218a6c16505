package utils

import (
	"bytes"
	"context"
	"encoding/base64"
	"log"

	"cloud.google.com/go/firestore"
	"etix/src/config"
	"etix/src/db"
	"etix/src/models"
	"etix/src/types"
	"github.com/google/uuid"
	"github.com/yeqown/go-qrcode"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// SumTicketRevenue adds up totalPrice across all tickets regardless of
// status. A ticket without a totalPrice contributes zero.
func SumTicketRevenue(tickets []models.Ticket) float64 {
	var total float64
	for _, t := range tickets {
		total += t.TotalPrice
	}
	return total
}

// ComputeEventStatistics derives per-event ticket counts and
// payment-derived revenue. canceledTickets counts tickets whose status is
// "canceled"; the revenue figure comes from paid payments and is a
// different number than the ticket-derived revenue on the revenue route.
func ComputeEventStatistics(tickets []models.Ticket, payments []models.Payment) types.EventStatistics {
	stats := types.EventStatistics{
		TotalTickets: int64(len(tickets)),
	}
	for _, t := range tickets {
		switch types.Status(t.Status) {
		case types.TICKET_CONFIRMED:
			stats.SoldTickets++
		case types.TICKET_CANCELED:
			stats.CanceledTickets++
		}
	}
	for _, p := range payments {
		if types.Status(p.Status) == types.PAYMENT_PAID {
			stats.TotalRevenue += p.Amount
		}
	}
	return stats
}

// BestTicketType returns the ticket type with the largest cumulative
// quantity. Ties go to the type encountered first in ticket-scan order.
func BestTicketType(tickets []models.Ticket) (string, int64) {
	counts := make(map[string]int64)
	var order []string
	for _, t := range tickets {
		if t.TicketType == "" {
			continue
		}
		if _, ok := counts[t.TicketType]; !ok {
			order = append(order, t.TicketType)
		}
		counts[t.TicketType] += t.Quantity
	}
	var best string
	var bestQty int64
	for _, name := range order {
		if counts[name] > bestQty {
			best = name
			bestQty = counts[name]
		}
	}
	return best, bestQty
}

func ComputeOrganizerKPIs(events []models.Event, tickets []models.Ticket) types.OrganizerKPIs {
	best, bestQty := BestTicketType(tickets)
	return types.OrganizerKPIs{
		TotalRevenue:           SumTicketRevenue(tickets),
		TotalSoldTickets:       int64(len(tickets)),
		TotalEvents:            int64(len(events)),
		BestTicketType:         best,
		BestTicketTypeQuantity: bestQty,
	}
}

// NextFavoriteState applies one toggle to a favorite set. Removal drops
// every occurrence of the id, matching ArrayRemove semantics.
func NextFavoriteState(events []string, eventID string) ([]string, bool) {
	var next []string
	removed := false
	for _, id := range events {
		if id == eventID {
			removed = true
			continue
		}
		next = append(next, id)
	}
	if removed {
		return next, false
	}
	return append(next, eventID), true
}

func IsFavorited(events []string, eventID string) bool {
	for _, id := range events {
		if id == eventID {
			return true
		}
	}
	return false
}

// SuggestionFilters collects the distinct categories and locations across
// a user's liked events, preserving first-seen order.
func SuggestionFilters(events []models.Event) ([]string, []string) {
	var categories, locations []string
	seenCat := make(map[string]bool)
	seenLoc := make(map[string]bool)
	for _, e := range events {
		if e.Category != "" && !seenCat[e.Category] {
			seenCat[e.Category] = true
			categories = append(categories, e.Category)
		}
		if e.Location != "" && !seenLoc[e.Location] {
			seenLoc[e.Location] = true
			locations = append(locations, e.Location)
		}
	}
	return categories, locations
}

// MarkLiked decorates every event with an isLiked flag, defaulting to
// false so the field is always present once a userId was supplied.
func MarkLiked(events []models.Event, favorites []string) []models.Event {
	for i := range events {
		liked := IsFavorited(favorites, events[i].EventID)
		events[i].IsLiked = &liked
	}
	return events
}

func Chunk(ids []string, size int) [][]string {
	var chunks [][]string
	for size > 0 && len(ids) > size {
		chunks = append(chunks, ids[:size])
		ids = ids[size:]
	}
	if len(ids) > 0 {
		chunks = append(chunks, ids)
	}
	return chunks
}

// GenerateTicketCode mints a barcode value and its QR representation as a
// base64 data URL, both stored on the ticket document.
func GenerateTicketCode() (string, string, error) {
	barcode := uuid.NewString()
	qrc, err := qrcode.New(barcode)
	if err != nil {
		return "", "", err
	}
	var buf bytes.Buffer
	if err := qrc.SaveTo(&buf); err != nil {
		return "", "", err
	}
	encoded := base64.StdEncoding.EncodeToString(buf.Bytes())
	return barcode, "data:image/jpeg;base64," + encoded, nil
}

func FetchAllEvents(ctx context.Context) ([]models.Event, error) {
	client := db.GetDb()
	docs, err := client.
		Collection(db.COLLECTION_EVENTS).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}
	return decodeEvents(docs)
}

// FetchFavorite returns the user's favorite document and whether one
// exists. A missing document is not an error.
func FetchFavorite(ctx context.Context, userID string) (models.Favorite, bool, error) {
	client := db.GetDb()
	doc, err := client.Collection(db.COLLECTION_FAVORITES).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return models.Favorite{UserID: userID}, false, nil
		}
		return models.Favorite{}, false, err
	}
	var fav models.Favorite
	if err := doc.DataTo(&fav); err != nil {
		log.Printf("Error decoding favorites for %s: %s\n", userID, err.Error())
		return models.Favorite{}, false, err
	}
	return fav, true, nil
}

func FetchTicketsByEvent(ctx context.Context, eventID string) ([]models.Ticket, error) {
	client := db.GetDb()
	docs, err := client.
		Collection(db.COLLECTION_TICKETS).
		Where("eventId", "==", eventID).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}
	return decodeTickets(docs)
}

// FetchTicketsByEvents runs one `in` query per chunk of event ids so
// organizers with more than 30 events still aggregate fully.
func FetchTicketsByEvents(ctx context.Context, eventIDs []string) ([]models.Ticket, error) {
	client := db.GetDb()
	var tickets []models.Ticket
	for _, chunk := range Chunk(eventIDs, config.IN_QUERY_LIMIT) {
		docs, err := client.
			Collection(db.COLLECTION_TICKETS).
			Where("eventId", "in", chunk).
			Documents(ctx).
			GetAll()
		if err != nil {
			return nil, err
		}
		decoded, err := decodeTickets(docs)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, decoded...)
	}
	return tickets, nil
}

func FetchEventsByOrganizer(ctx context.Context, organizerID string) ([]models.Event, error) {
	client := db.GetDb()
	docs, err := client.
		Collection(db.COLLECTION_EVENTS).
		Where("organizer.organizerId", "==", organizerID).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}
	return decodeEvents(docs)
}

func FetchEventsByIDs(ctx context.Context, eventIDs []string) ([]models.Event, error) {
	client := db.GetDb()
	var events []models.Event
	for _, chunk := range Chunk(eventIDs, config.IN_QUERY_LIMIT) {
		docs, err := client.
			Collection(db.COLLECTION_EVENTS).
			Where("eventId", "in", chunk).
			Documents(ctx).
			GetAll()
		if err != nil {
			return nil, err
		}
		decoded, err := decodeEvents(docs)
		if err != nil {
			return nil, err
		}
		events = append(events, decoded...)
	}
	return events, nil
}

func FetchPaidPaymentsByEvent(ctx context.Context, eventID string) ([]models.Payment, error) {
	client := db.GetDb()
	docs, err := client.
		Collection(db.COLLECTION_PAYMENTS).
		Where("eventId", "==", eventID).
		Where("status", "==", string(types.PAYMENT_PAID)).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}
	var payments []models.Payment
	for _, doc := range docs {
		var p models.Payment
		if err := doc.DataTo(&p); err != nil {
			log.Printf("Error decoding payment %s: %s\n", doc.Ref.ID, err.Error())
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, nil
}

func decodeTickets(docs []*firestore.DocumentSnapshot) ([]models.Ticket, error) {
	var tickets []models.Ticket
	for _, doc := range docs {
		var t models.Ticket
		if err := doc.DataTo(&t); err != nil {
			log.Printf("Error decoding ticket %s: %s\n", doc.Ref.ID, err.Error())
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}

func decodeEvents(docs []*firestore.DocumentSnapshot) ([]models.Event, error) {
	var events []models.Event
	for _, doc := range docs {
		var e models.Event
		if err := doc.DataTo(&e); err != nil {
			log.Printf("Error decoding event %s: %s\n", doc.Ref.ID, err.Error())
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}
