package main

import (
	"context"
	"log"
	"net/http"

	"etix/src/db"
	"etix/src/lib"
	"etix/src/models"
	"etix/src/types"
	"firebase.google.com/go/v4/messaging"
	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func notificationHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/notifications", func(ctx *gin.Context) {
			var body types.CreateNotificationRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			client := db.GetDb()
			ref := client.Collection(db.COLLECTION_NOTIFICATIONS).NewDoc()
			notification := models.Notification{
				NotificationID: ref.ID,
				Title:          body.Title,
				Body:           body.Body,
				Topic:          body.Topic,
				Data:           body.Data,
			}
			if _, err := ref.Set(ctx, notification); err != nil {
				log.Printf("Error creating notification: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			if body.Topic != "" {
				go pushNotification(notification)
			}
			ctx.JSON(http.StatusCreated, gin.H{"id": ref.ID})
		}).
		GET("/notifications", func(ctx *gin.Context) {
			client := db.GetDb()
			docs, err := client.Collection(db.COLLECTION_NOTIFICATIONS).Documents(ctx).GetAll()
			if err != nil {
				log.Printf("Error retrieving notifications: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			notifications := []models.Notification{}
			for _, doc := range docs {
				var n models.Notification
				if err := doc.DataTo(&n); err != nil {
					log.Printf("Error decoding notification %s: %s\n", doc.Ref.ID, err.Error())
					ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
					return
				}
				notifications = append(notifications, n)
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "notifications retrieved", "notifications": notifications})
		}).
		GET("/notifications/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			client := db.GetDb()
			doc, err := client.Collection(db.COLLECTION_NOTIFICATIONS).Doc(params.ID).Get(ctx)
			if err != nil {
				if status.Code(err) == codes.NotFound {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Notification does not exist"})
					return
				}
				log.Printf("Error retrieving notification %s: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			var notification models.Notification
			if err := doc.DataTo(&notification); err != nil {
				log.Printf("Error decoding notification %s: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			ctx.JSON(http.StatusOK, notification)
		}).
		DELETE("/notifications/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			client := db.GetDb()
			if _, err := client.Collection(db.COLLECTION_NOTIFICATIONS).Doc(params.ID).Delete(ctx); err != nil {
				log.Printf("Error deleting notification %s: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "notification deleted"})
		})
	return g
}

// pushNotification forwards a stored notification to its FCM topic.
// Best-effort only: delivery failure never fails the request that stored
// the document.
func pushNotification(n models.Notification) {
	fcm, err := lib.GetFirebaseMessaging()
	if err != nil {
		log.Printf("Could not retrieve FCM instance: %s\n", err.Error())
		return
	}
	msg := &messaging.Message{
		Topic: n.Topic,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Body,
		},
	}
	if _, err := fcm.Send(context.Background(), msg); err != nil {
		log.Printf("[FCM] error sending to topic [%s]: %s\n", n.Topic, err.Error())
	}
}
