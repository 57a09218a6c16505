package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"cloud.google.com/go/firestore"
	"etix/src/db"
	"etix/src/lib"
	"etix/src/models"
	"etix/src/types"
	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func userHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/users", func(ctx *gin.Context) {
			var body types.CreateUserRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			client := db.GetDb()
			ref := client.Collection(db.COLLECTION_USERS).NewDoc()
			user := models.User{
				UserID:    ref.ID,
				Name:      body.Name,
				Email:     body.Email,
				AvatarURL: body.AvatarURL,
			}
			if _, err := ref.Set(ctx, user); err != nil {
				log.Printf("Error creating user: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"id": ref.ID})
		}).
		POST("/users/batch", func(ctx *gin.Context) {
			var body types.BatchCreateUsersRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			client := db.GetDb()
			batch := client.Batch()
			ids := make([]string, 0, len(body.Users))
			for _, u := range body.Users {
				ref := client.Collection(db.COLLECTION_USERS).NewDoc()
				batch.Set(ref, models.User{
					UserID:    ref.ID,
					Name:      u.Name,
					Email:     u.Email,
					AvatarURL: u.AvatarURL,
				})
				ids = append(ids, ref.ID)
			}
			if _, err := batch.Commit(ctx); err != nil {
				log.Printf("Error committing user batch: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"id": ids, "message": "users created"})
		}).
		GET("/users", func(ctx *gin.Context) {
			client := db.GetDb()
			docs, err := client.Collection(db.COLLECTION_USERS).Documents(ctx).GetAll()
			if err != nil {
				log.Printf("Error retrieving users: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			users := []models.User{}
			for _, doc := range docs {
				var u models.User
				if err := doc.DataTo(&u); err != nil {
					log.Printf("Error decoding user %s: %s\n", doc.Ref.ID, err.Error())
					ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
					return
				}
				users = append(users, u)
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "users retrieved", "users": users})
		}).
		GET("/users/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			client := db.GetDb()
			doc, err := client.Collection(db.COLLECTION_USERS).Doc(params.ID).Get(ctx)
			if err != nil {
				if status.Code(err) == codes.NotFound {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "User does not exist"})
					return
				}
				log.Printf("Error retrieving user %s: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			var user models.User
			if err := doc.DataTo(&user); err != nil {
				log.Printf("Error decoding user %s: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			ctx.JSON(http.StatusOK, user)
		}).
		PATCH("/users/:id", func(ctx *gin.Context) {
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
			delete(body, "userId")
			if len(body) == 0 {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "no updatable fields in request body"})
				return
			}
			client := db.GetDb()
			ref := client.Collection(db.COLLECTION_USERS).Doc(params.ID)
			if _, err := ref.Get(ctx); err != nil {
				if status.Code(err) == codes.NotFound {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "User does not exist"})
					return
				}
				log.Printf("Error retrieving user %s: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			if _, err := ref.Set(ctx, body, firestore.MergeAll); err != nil {
				log.Printf("Error updating user %s: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "user updated"})
		}).
		DELETE("/users/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			client := db.GetDb()
			if _, err := client.Collection(db.COLLECTION_USERS).Doc(params.ID).Delete(ctx); err != nil {
				log.Printf("Error deleting user %s: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "user deleted"})
		}).
		POST("/users/:id/verify-email", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			client := db.GetDb()
			doc, err := client.Collection(db.COLLECTION_USERS).Doc(params.ID).Get(ctx)
			if err != nil {
				if status.Code(err) == codes.NotFound {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "User does not exist"})
					return
				}
				log.Printf("Error retrieving user %s: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			var user models.User
			if err := doc.DataTo(&user); err != nil {
				log.Printf("Error decoding user %s: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			appHost := os.Getenv("APP_HOST")
			input := &lib.SendMailInput{
				From:     os.Getenv("MAIL_FROM"),
				FromName: os.Getenv("MAIL_FROM_NAME"),
				To:       []string{user.Email},
				Subject:  "Verify your email address",
				Body: fmt.Sprintf(
					"Hi %s,\n\nPlease verify your email address by visiting %s/verify?userId=%s\n",
					user.Name, appHost, user.UserID,
				),
			}
			if err := lib.SendMail(input); err != nil {
				log.Printf("Error sending verification email to %s: %s\n", user.Email, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "verification email sent"})
		})
	return g
}
