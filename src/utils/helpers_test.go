package utils

import (
	"testing"

	"etix/src/models"
	"github.com/stretchr/testify/assert"
)

func TestSumTicketRevenue(t *testing.T) {
	tickets := []models.Ticket{
		{TicketID: "t1", TotalPrice: 120.50, Status: "confirmed"},
		{TicketID: "t2", TotalPrice: 80, Status: "pending"},
		{TicketID: "t3", Status: "canceled"},
	}

	assert.Equal(t, 200.50, SumTicketRevenue(tickets))
	assert.Equal(t, float64(0), SumTicketRevenue(nil))
}

func TestComputeEventStatistics(t *testing.T) {
	tickets := []models.Ticket{
		{TicketID: "t1", Status: "confirmed", TotalPrice: 100},
		{TicketID: "t2", Status: "confirmed", TotalPrice: 100},
		{TicketID: "t3", Status: "pending", TotalPrice: 50},
		{TicketID: "t4", Status: "canceled", TotalPrice: 50},
	}
	payments := []models.Payment{
		{PaymentID: "p1", Status: "paid", Amount: 150},
		{PaymentID: "p2", Status: "paid", Amount: 25},
		{PaymentID: "p3", Status: "pending", Amount: 9999},
	}

	stats := ComputeEventStatistics(tickets, payments)

	assert.Equal(t, int64(4), stats.TotalTickets)
	assert.Equal(t, int64(2), stats.SoldTickets)
	assert.Equal(t, int64(1), stats.CanceledTickets)
	assert.Equal(t, float64(175), stats.TotalRevenue)

	ticketRevenue := SumTicketRevenue(tickets)
	assert.Equal(t, float64(300), ticketRevenue)
	assert.NotEqual(t, stats.TotalRevenue, ticketRevenue,
		"payment-derived and ticket-derived revenue are independent figures")
}

func TestComputeEventStatisticsEmpty(t *testing.T) {
	stats := ComputeEventStatistics(nil, nil)
	assert.Equal(t, int64(0), stats.TotalTickets)
	assert.Equal(t, int64(0), stats.SoldTickets)
	assert.Equal(t, int64(0), stats.CanceledTickets)
	assert.Equal(t, float64(0), stats.TotalRevenue)
}

func TestBestTicketTypeTieBreak(t *testing.T) {
	tickets := []models.Ticket{
		{TicketID: "t1", TicketType: "GA", Quantity: 5},
		{TicketID: "t2", TicketType: "VIP", Quantity: 5},
	}

	best, qty := BestTicketType(tickets)

	assert.Equal(t, "GA", best, "first type to reach the maximum wins ties")
	assert.Equal(t, int64(5), qty)
}

func TestBestTicketTypeNoTypes(t *testing.T) {
	tickets := []models.Ticket{
		{TicketID: "t1", Quantity: 3},
	}

	best, qty := BestTicketType(tickets)

	assert.Equal(t, "", best)
	assert.Equal(t, int64(0), qty)
}

func TestComputeOrganizerKPIs(t *testing.T) {
	events := []models.Event{
		{EventID: "e1", Organizer: models.Organizer{OrganizerID: "orgA"}},
		{EventID: "e2", Organizer: models.Organizer{OrganizerID: "orgA"}},
	}
	// 5 tickets across 3 events; e3 belongs to another organizer and its
	// ticket must stay out of the aggregation input.
	allTickets := []models.Ticket{
		{TicketID: "t1", EventID: "e1", TicketType: "GA", Quantity: 2, TotalPrice: 40},
		{TicketID: "t2", EventID: "e1", TicketType: "VIP", Quantity: 1, TotalPrice: 100},
		{TicketID: "t3", EventID: "e2", TicketType: "GA", Quantity: 1, TotalPrice: 20},
		{TicketID: "t4", EventID: "e2", TicketType: "VIP", Quantity: 1, TotalPrice: 100},
		{TicketID: "t5", EventID: "e3", TicketType: "GA", Quantity: 9, TotalPrice: 999},
	}
	ownedIDs := map[string]bool{"e1": true, "e2": true}
	var tickets []models.Ticket
	for _, tk := range allTickets {
		if ownedIDs[tk.EventID] {
			tickets = append(tickets, tk)
		}
	}

	kpis := ComputeOrganizerKPIs(events, tickets)

	assert.Equal(t, float64(260), kpis.TotalRevenue)
	assert.Equal(t, int64(4), kpis.TotalSoldTickets)
	assert.Equal(t, int64(2), kpis.TotalEvents)
	assert.Equal(t, "GA", kpis.BestTicketType)
	assert.Equal(t, int64(3), kpis.BestTicketTypeQuantity)
}

func TestNextFavoriteStateAlternation(t *testing.T) {
	var favs []string

	favs, liked := NextFavoriteState(favs, "e1")
	assert.True(t, liked)
	assert.Equal(t, []string{"e1"}, favs)

	favs, liked = NextFavoriteState(favs, "e1")
	assert.False(t, liked)
	assert.Empty(t, favs)

	favs, liked = NextFavoriteState(favs, "e1")
	assert.True(t, liked)
	assert.Equal(t, []string{"e1"}, favs)
}

func TestNextFavoriteStateRemovesAllOccurrences(t *testing.T) {
	favs := []string{"e1", "e2", "e1"}

	favs, liked := NextFavoriteState(favs, "e1")

	assert.False(t, liked)
	assert.Equal(t, []string{"e2"}, favs)
}

func TestSuggestionFilters(t *testing.T) {
	events := []models.Event{
		{EventID: "e1", Category: "music", Location: "Berlin"},
		{EventID: "e2", Category: "music", Location: "Hamburg"},
		{EventID: "e3", Category: "tech"},
		{EventID: "e4"},
	}

	categories, locations := SuggestionFilters(events)

	assert.Equal(t, []string{"music", "tech"}, categories)
	assert.Equal(t, []string{"Berlin", "Hamburg"}, locations)
}

func TestSuggestionFiltersAllEmpty(t *testing.T) {
	events := []models.Event{
		{EventID: "e1"},
		{EventID: "e2"},
	}

	categories, locations := SuggestionFilters(events)

	assert.Empty(t, categories)
	assert.Empty(t, locations)
}

func TestMarkLiked(t *testing.T) {
	events := []models.Event{
		{EventID: "e1"},
		{EventID: "e2"},
	}

	marked := MarkLiked(events, []string{"e2"})

	assert.NotNil(t, marked[0].IsLiked)
	assert.False(t, *marked[0].IsLiked)
	assert.True(t, *marked[1].IsLiked)
}

func TestChunk(t *testing.T) {
	ids := []string{"a", "b", "c", "d", "e"}

	chunks := Chunk(ids, 2)

	assert.Len(t, chunks, 3)
	assert.Equal(t, []string{"a", "b"}, chunks[0])
	assert.Equal(t, []string{"e"}, chunks[2])

	assert.Nil(t, Chunk(nil, 2))
	assert.Len(t, Chunk(ids, 30), 1)
}

func TestGenerateTicketCode(t *testing.T) {
	barcode, qrc, err := GenerateTicketCode()

	assert.Nil(t, err)
	assert.NotEmpty(t, barcode)
	assert.Contains(t, qrc, "data:image/jpeg;base64,")
}
