package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"cloud.google.com/go/firestore"
	"etix/src/db"
	"etix/src/models"
	"etix/src/types"
	"etix/src/utils"
	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var errNotEnoughTickets = errors.New("not enough tickets left for this event")

func ticketHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/tickets", func(ctx *gin.Context) {
			var body types.PurchaseTicketRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
				return
			}
			barcode, qrc, err := utils.GenerateTicketCode()
			if err != nil {
				log.Printf("Error generating ticket code: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "something went wrong"})
				return
			}
			client := db.GetDb()
			ticketRef := client.Collection(db.COLLECTION_TICKETS).NewDoc()
			eventRef := client.Collection(db.COLLECTION_EVENTS).Doc(body.EventID)
			ticket := models.Ticket{
				TicketID:   ticketRef.ID,
				EventID:    body.EventID,
				UserID:     body.UserID,
				Seat:       body.Seat,
				TicketType: body.TicketType,
				Quantity:   body.Quantity,
				TotalPrice: body.TotalPrice,
				Status:     string(types.TICKET_PENDING),
				Barcode:    barcode,
				Qrcode:     qrc,
			}
			// The capacity check and the ticketsLeft decrement ride in one
			// transaction so concurrent purchases cannot oversell.
			err = client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
				snap, err := tx.Get(eventRef)
				if err != nil {
					return err
				}
				var event models.Event
				if err := snap.DataTo(&event); err != nil {
					return err
				}
				if event.TicketsLeft < body.Quantity {
					return errNotEnoughTickets
				}
				if err := tx.Update(eventRef, []firestore.Update{
					{Path: "ticketsLeft", Value: firestore.Increment(-body.Quantity)},
				}); err != nil {
					return err
				}
				return tx.Set(ticketRef, ticket)
			})
			if err != nil {
				if status.Code(err) == codes.NotFound {
					ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Event does not exist"})
					return
				}
				if errors.Is(err, errNotEnoughTickets) {
					ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
					return
				}
				log.Printf("Error purchasing ticket for event %s: %s\n", body.EventID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "something went wrong"})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"success": true, "data": ticket})
		}).
		GET("/tickets", func(ctx *gin.Context) {
			client := db.GetDb()
			query := client.Collection(db.COLLECTION_TICKETS).Query
			if eventId := ctx.Query("eventId"); eventId != "" {
				query = query.Where("eventId", "==", eventId)
			}
			if userId := ctx.Query("userId"); userId != "" {
				query = query.Where("userId", "==", userId)
			}
			docs, err := query.Documents(ctx).GetAll()
			if err != nil {
				log.Printf("Error retrieving tickets: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "something went wrong"})
				return
			}
			tickets := []models.Ticket{}
			for _, doc := range docs {
				var t models.Ticket
				if err := doc.DataTo(&t); err != nil {
					log.Printf("Error decoding ticket %s: %s\n", doc.Ref.ID, err.Error())
					ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "something went wrong"})
					return
				}
				tickets = append(tickets, t)
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "data": tickets})
		}).
		GET("/tickets/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
				return
			}
			client := db.GetDb()
			doc, err := client.Collection(db.COLLECTION_TICKETS).Doc(params.ID).Get(ctx)
			if err != nil {
				if status.Code(err) == codes.NotFound {
					ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Ticket does not exist"})
					return
				}
				log.Printf("Error retrieving ticket %s: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "something went wrong"})
				return
			}
			var ticket models.Ticket
			if err := doc.DataTo(&ticket); err != nil {
				log.Printf("Error decoding ticket %s: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "something went wrong"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "data": ticket})
		}).
		PATCH("/tickets/:id/status", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
				return
			}
			var body types.UpdateTicketStatusRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
				return
			}
			client := db.GetDb()
			ref := client.Collection(db.COLLECTION_TICKETS).Doc(params.ID)
			if _, err := ref.Update(ctx, []firestore.Update{
				{Path: "status", Value: body.Status},
			}); err != nil {
				if status.Code(err) == codes.NotFound {
					ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Ticket does not exist"})
					return
				}
				log.Printf("Error updating ticket %s: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "something went wrong"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "ticket status updated"})
		}).
		DELETE("/tickets/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
				return
			}
			client := db.GetDb()
			if _, err := client.Collection(db.COLLECTION_TICKETS).Doc(params.ID).Delete(ctx); err != nil {
				log.Printf("Error deleting ticket %s: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "something went wrong"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "ticket deleted"})
		})
	return g
}
