package main

import (
	"log"
	"net/http"

	"cloud.google.com/go/firestore"
	"etix/src/db"
	"etix/src/models"
	"etix/src/types"
	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func paymentHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/payments", func(ctx *gin.Context) {
			var body types.CreatePaymentRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			client := db.GetDb()
			ref := client.Collection(db.COLLECTION_PAYMENTS).NewDoc()
			payment := models.Payment{
				PaymentID:   ref.ID,
				UserID:      body.UserID,
				EventID:     body.EventID,
				Amount:      body.Amount,
				Status:      body.Status,
				PaymentType: body.PaymentType,
			}
			if _, err := ref.Set(ctx, payment); err != nil {
				log.Printf("Error creating payment: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"id": ref.ID})
		}).
		GET("/payments", func(ctx *gin.Context) {
			client := db.GetDb()
			query := client.Collection(db.COLLECTION_PAYMENTS).Query
			if userId := ctx.Query("userId"); userId != "" {
				query = query.Where("userId", "==", userId)
			}
			if eventId := ctx.Query("eventId"); eventId != "" {
				query = query.Where("eventId", "==", eventId)
			}
			docs, err := query.Documents(ctx).GetAll()
			if err != nil {
				log.Printf("Error retrieving payments: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			payments := []models.Payment{}
			for _, doc := range docs {
				var p models.Payment
				if err := doc.DataTo(&p); err != nil {
					log.Printf("Error decoding payment %s: %s\n", doc.Ref.ID, err.Error())
					ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
					return
				}
				payments = append(payments, p)
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "payments retrieved", "payments": payments})
		}).
		GET("/payments/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			client := db.GetDb()
			doc, err := client.Collection(db.COLLECTION_PAYMENTS).Doc(params.ID).Get(ctx)
			if err != nil {
				if status.Code(err) == codes.NotFound {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Payment does not exist"})
					return
				}
				log.Printf("Error retrieving payment %s: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			var payment models.Payment
			if err := doc.DataTo(&payment); err != nil {
				log.Printf("Error decoding payment %s: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			ctx.JSON(http.StatusOK, payment)
		}).
		PATCH("/payments/:id", func(ctx *gin.Context) {
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
			delete(body, "paymentId")
			delete(body, "timestamp")
			if len(body) == 0 {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "no updatable fields in request body"})
				return
			}
			client := db.GetDb()
			ref := client.Collection(db.COLLECTION_PAYMENTS).Doc(params.ID)
			if _, err := ref.Get(ctx); err != nil {
				if status.Code(err) == codes.NotFound {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Payment does not exist"})
					return
				}
				log.Printf("Error retrieving payment %s: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			if _, err := ref.Set(ctx, body, firestore.MergeAll); err != nil {
				log.Printf("Error updating payment %s: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "payment updated"})
		}).
		DELETE("/payments/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			client := db.GetDb()
			if _, err := client.Collection(db.COLLECTION_PAYMENTS).Doc(params.ID).Delete(ctx); err != nil {
				log.Printf("Error deleting payment %s: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "payment deleted"})
		})
	return g
}
