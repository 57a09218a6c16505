package main

import (
	"log"
	"net/http"

	"etix/src/models"
	"etix/src/types"
	"etix/src/utils"
	"github.com/gin-gonic/gin"
)

func organizerHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/organizers/:id/kpis", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
				return
			}
			events, err := utils.FetchEventsByOrganizer(ctx, params.ID)
			if err != nil {
				log.Printf("Error retrieving events for organizer %s: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "something went wrong"})
				return
			}
			if len(events) == 0 {
				ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No events found for this organizer"})
				return
			}
			eventIDs := make([]string, 0, len(events))
			for _, e := range events {
				eventIDs = append(eventIDs, e.EventID)
			}
			tickets, err := utils.FetchTicketsByEvents(ctx, eventIDs)
			if err != nil {
				log.Printf("Error retrieving tickets for organizer %s: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "something went wrong"})
				return
			}
			if tickets == nil {
				tickets = []models.Ticket{}
			}
			kpis := utils.ComputeOrganizerKPIs(events, tickets)
			ctx.JSON(http.StatusOK, gin.H{"success": true, "data": kpis})
		})
	return g
}
