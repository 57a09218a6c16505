package main

import (
	"errors"
	"log"
	"net/http"

	"cloud.google.com/go/firestore"
	"etix/src/config"
	"etix/src/db"
	"etix/src/models"
	"etix/src/types"
	"etix/src/utils"
	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func eventHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/events", func(ctx *gin.Context) {
			var body types.CreateEventRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			client := db.GetDb()
			ref := client.Collection(db.COLLECTION_EVENTS).NewDoc()
			event := models.Event{
				EventID:             ref.ID,
				Title:               body.Title,
				Slug:                slug.Make(body.Title),
				Date:                body.Date,
				Time:                body.Time,
				Location:            body.Location,
				Price:               body.Price,
				Description:         body.Description,
				Agenda:              body.Agenda,
				Images:              body.Images,
				TicketsLeft:         body.TicketsLeft,
				Category:            body.Category,
				TotalCapacityNeeded: body.TotalCapacityNeeded,
				Organizer: models.Organizer{
					OrganizerID: body.Organizer.OrganizerID,
					Name:        body.Organizer.Name,
					Email:       body.Organizer.Email,
				},
			}
			if _, err := ref.Set(ctx, event); err != nil {
				log.Printf("Error creating event: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"id": ref.ID})
		}).
		GET("/events", func(ctx *gin.Context) {
			events, err := utils.FetchAllEvents(ctx)
			if err != nil {
				log.Printf("Error retrieving events: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			if userId := ctx.Query("userId"); userId != "" {
				fav, _, err := utils.FetchFavorite(ctx, userId)
				if err != nil {
					log.Printf("Error retrieving favorites for %s: %s\n", userId, err.Error())
					ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
					return
				}
				events = utils.MarkLiked(events, fav.Events)
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "events retrieved", "events": events})
		}).
		GET("/events/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			client := db.GetDb()
			doc, err := client.Collection(db.COLLECTION_EVENTS).Doc(params.ID).Get(ctx)
			if err != nil {
				if status.Code(err) == codes.NotFound {
					err := errors.New("Event does not exist")
					ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
					return
				}
				log.Printf("Error retrieving event %s: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			var event models.Event
			if err := doc.DataTo(&event); err != nil {
				log.Printf("Error decoding event %s: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			ctx.JSON(http.StatusOK, event)
		}).
		PATCH("/events/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body map[string]any
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			delete(body, "eventId")
			delete(body, "createdAt")
			if len(body) == 0 {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "no updatable fields in request body"})
				return
			}
			client := db.GetDb()
			ref := client.Collection(db.COLLECTION_EVENTS).Doc(params.ID)
			if _, err := ref.Get(ctx); err != nil {
				if status.Code(err) == codes.NotFound {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Event does not exist"})
					return
				}
				log.Printf("Error retrieving event %s: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			if _, err := ref.Set(ctx, body, firestore.MergeAll); err != nil {
				log.Printf("Error updating event %s: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "event updated"})
		}).
		DELETE("/events/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			client := db.GetDb()
			if _, err := client.Collection(db.COLLECTION_EVENTS).Doc(params.ID).Delete(ctx); err != nil {
				log.Printf("Error deleting event %s: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "event deleted"})
		}).
		DELETE("/events", func(ctx *gin.Context) {
			client := db.GetDb()
			docs, err := client.Collection(db.COLLECTION_EVENTS).Documents(ctx).GetAll()
			if err != nil {
				log.Printf("Error listing events for bulk delete: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			deleted := 0
			for start := 0; start < len(docs); start += config.BATCH_WRITE_LIMIT {
				end := start + config.BATCH_WRITE_LIMIT
				if end > len(docs) {
					end = len(docs)
				}
				batch := client.Batch()
				for _, doc := range docs[start:end] {
					batch.Delete(doc.Ref)
				}
				if _, err := batch.Commit(ctx); err != nil {
					log.Printf("Error committing bulk delete batch: %s\n", err.Error())
					ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
					return
				}
				deleted += end - start
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "all events deleted", "count": deleted})
		}).
		GET("/events/:id/revenue", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			tickets, err := utils.FetchTicketsByEvent(ctx, params.ID)
			if err != nil {
				log.Printf("Error retrieving tickets for event %s: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			if len(tickets) == 0 {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "No tickets found for this event"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"totalRevenue": utils.SumTicketRevenue(tickets)})
		}).
		GET("/events/:id/statistics", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
				return
			}
			tickets, err := utils.FetchTicketsByEvent(ctx, params.ID)
			if err != nil {
				log.Printf("Error retrieving tickets for event %s: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "something went wrong"})
				return
			}
			if len(tickets) == 0 {
				ctx.JSON(http.StatusOK, gin.H{"success": true, "data": types.EventStatistics{}})
				return
			}
			payments, err := utils.FetchPaidPaymentsByEvent(ctx, params.ID)
			if err != nil {
				log.Printf("Error retrieving payments for event %s: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "something went wrong"})
				return
			}
			stats := utils.ComputeEventStatistics(tickets, payments)
			ctx.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
		})
	return g
}
