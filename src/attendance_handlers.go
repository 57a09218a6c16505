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

func attendanceHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/attendance", func(ctx *gin.Context) {
			var body types.CreateAttendanceRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			client := db.GetDb()
			ref := client.Collection(db.COLLECTION_ATTENDANCE).NewDoc()
			attendance := models.Attendance{
				AttendanceID:     ref.ID,
				EventID:          body.EventID,
				UserID:           body.UserID,
				AttendanceStatus: body.AttendanceStatus,
				PaymentStatus:    body.PaymentStatus,
			}
			if _, err := ref.Set(ctx, attendance); err != nil {
				log.Printf("Error creating attendance record: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"id": ref.ID})
		}).
		GET("/attendance", func(ctx *gin.Context) {
			// (userId, eventId) pair lookup for callers that do not hold an
			// attendance id.
			userId := ctx.Query("userId")
			eventId := ctx.Query("eventId")
			if userId == "" || eventId == "" {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "userId and eventId query parameters are required"})
				return
			}
			client := db.GetDb()
			docs, err := client.
				Collection(db.COLLECTION_ATTENDANCE).
				Where("userId", "==", userId).
				Where("eventId", "==", eventId).
				Documents(ctx).
				GetAll()
			if err != nil {
				log.Printf("Error retrieving attendance for user %s, event %s: %s\n", userId, eventId, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			if len(docs) == 0 {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "Attendance record does not exist"})
				return
			}
			var attendance models.Attendance
			if err := docs[0].DataTo(&attendance); err != nil {
				log.Printf("Error decoding attendance %s: %s\n", docs[0].Ref.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			ctx.JSON(http.StatusOK, attendance)
		}).
		GET("/attendance/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			client := db.GetDb()
			doc, err := client.Collection(db.COLLECTION_ATTENDANCE).Doc(params.ID).Get(ctx)
			if err != nil {
				if status.Code(err) == codes.NotFound {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Attendance record does not exist"})
					return
				}
				log.Printf("Error retrieving attendance %s: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			var attendance models.Attendance
			if err := doc.DataTo(&attendance); err != nil {
				log.Printf("Error decoding attendance %s: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			ctx.JSON(http.StatusOK, attendance)
		}).
		PATCH("/attendance/:id", func(ctx *gin.Context) {
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
			delete(body, "attendanceId")
			delete(body, "timestamp")
			if len(body) == 0 {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "no updatable fields in request body"})
				return
			}
			client := db.GetDb()
			ref := client.Collection(db.COLLECTION_ATTENDANCE).Doc(params.ID)
			if _, err := ref.Get(ctx); err != nil {
				if status.Code(err) == codes.NotFound {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Attendance record does not exist"})
					return
				}
				log.Printf("Error retrieving attendance %s: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			if _, err := ref.Set(ctx, body, firestore.MergeAll); err != nil {
				log.Printf("Error updating attendance %s: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "attendance updated"})
		}).
		DELETE("/attendance/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			client := db.GetDb()
			if _, err := client.Collection(db.COLLECTION_ATTENDANCE).Doc(params.ID).Delete(ctx); err != nil {
				log.Printf("Error deleting attendance %s: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "attendance deleted"})
		})
	return g
}
