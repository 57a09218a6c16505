package main

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"etix/src/lib"
	"etix/src/types"
	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"
)

// Livestream routes are a pure passthrough: the provider owns the
// request/response shapes and the backend only relays them.
func livestreamHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/livestreams", func(ctx *gin.Context) {
			body, err := io.ReadAll(ctx.Request.Body)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ls := lib.GetLivestreamClient()
			res, err := ls.CreateStream(ctx, body)
			if err != nil {
				log.Printf("Error creating livestream: %s\n", err.Error())
				ctx.JSON(http.StatusBadGateway, gin.H{"error": "livestream provider error"})
				return
			}
			streamId := gjson.GetBytes(res, "id").String()
			ctx.JSON(http.StatusCreated, gin.H{"id": streamId, "data": json.RawMessage(res)})
		}).
		GET("/livestreams", func(ctx *gin.Context) {
			ls := lib.GetLivestreamClient()
			res, err := ls.ListStreams(ctx)
			if err != nil {
				log.Printf("Error listing livestreams: %s\n", err.Error())
				ctx.JSON(http.StatusBadGateway, gin.H{"error": "livestream provider error"})
				return
			}
			ctx.Data(http.StatusOK, "application/json; charset=utf-8", res)
		}).
		GET("/livestreams/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ls := lib.GetLivestreamClient()
			res, err := ls.GetStream(ctx, params.ID)
			if err != nil {
				log.Printf("Error retrieving livestream %s: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusBadGateway, gin.H{"error": "livestream provider error"})
				return
			}
			ctx.Data(http.StatusOK, "application/json; charset=utf-8", res)
		}).
		DELETE("/livestreams/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ls := lib.GetLivestreamClient()
			res, err := ls.DisableStream(ctx, params.ID)
			if err != nil {
				log.Printf("Error disabling livestream %s: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusBadGateway, gin.H{"error": "livestream provider error"})
				return
			}
			ctx.Data(http.StatusOK, "application/json; charset=utf-8", res)
		})
	return g
}
