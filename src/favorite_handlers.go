package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"etix/src/config"
	"etix/src/db"
	"etix/src/lib"
	"etix/src/models"
	"etix/src/types"
	"etix/src/utils"
	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const suggestionsCacheTTL = 5 * time.Minute

func suggestionsCacheKey(userID string) string {
	return fmt.Sprintf("suggestions:%s", userID)
}

func favoriteHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/favorites/toggle", func(ctx *gin.Context) {
			var body types.ToggleFavoriteRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			client := db.GetDb()
			ref := client.Collection(db.COLLECTION_FAVORITES).Doc(body.UserID)
			var liked bool
			// The membership decision and the matching array op run in one
			// transaction, so concurrent toggles for the same user serialize
			// instead of racing on which operation to apply.
			err := client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
				snap, err := tx.Get(ref)
				if err != nil && status.Code(err) != codes.NotFound {
					return err
				}
				if err != nil || !snap.Exists() {
					liked = true
					return tx.Set(ref, models.Favorite{
						UserID: body.UserID,
						Events: []string{body.EventID},
					})
				}
				var fav models.Favorite
				if err := snap.DataTo(&fav); err != nil {
					return err
				}
				if utils.IsFavorited(fav.Events, body.EventID) {
					liked = false
					return tx.Update(ref, []firestore.Update{
						{Path: "events", Value: firestore.ArrayRemove(body.EventID)},
					})
				}
				liked = true
				return tx.Update(ref, []firestore.Update{
					{Path: "events", Value: firestore.ArrayUnion(body.EventID)},
				})
			})
			if err != nil {
				log.Printf("Error toggling favorite for user %s: %s\n", body.UserID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			if rd := lib.GetRedisClient(); rd != nil {
				rd.Del(context.Background(), suggestionsCacheKey(body.UserID))
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "favorite toggled", "isLiked": liked})
		}).
		GET("/favorites/:userId", func(ctx *gin.Context) {
			var params types.UserRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			fav, found, err := utils.FetchFavorite(ctx, params.UserID)
			if err != nil {
				log.Printf("Error retrieving favorites for %s: %s\n", params.UserID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			if !found {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "No favorites found for this user"})
				return
			}
			if fav.Events == nil {
				fav.Events = []string{}
			}
			ctx.JSON(http.StatusOK, fav)
		}).
		GET("/favorites/:userId/suggestions", func(ctx *gin.Context) {
			var params types.UserRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			rd := lib.GetRedisClient()
			if rd != nil {
				cached, err := rd.Get(context.Background(), suggestionsCacheKey(params.UserID)).Result()
				if err == nil && cached != "" {
					ctx.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
					return
				}
			}
			fav, found, err := utils.FetchFavorite(ctx, params.UserID)
			if err != nil {
				log.Printf("Error retrieving favorites for %s: %s\n", params.UserID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			if !found {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "No favorites found for this user"})
				return
			}
			if len(fav.Events) == 0 {
				ctx.JSON(http.StatusOK, gin.H{"message": "suggestions retrieved", "suggestions": []models.Event{}})
				return
			}
			likedEvents, err := utils.FetchEventsByIDs(ctx, fav.Events)
			if err != nil {
				log.Printf("Error retrieving liked events for %s: %s\n", params.UserID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			categories, locations := utils.SuggestionFilters(likedEvents)
			if len(categories) == 0 && len(locations) == 0 {
				ctx.JSON(http.StatusOK, gin.H{"message": "suggestions retrieved", "suggestions": []models.Event{}})
				return
			}
			suggestions, err := querySuggestions(ctx, categories, locations)
			if err != nil {
				log.Printf("Error querying suggestions for %s: %s\n", params.UserID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			suggestions = utils.MarkLiked(suggestions, fav.Events)
			payload := gin.H{"message": "suggestions retrieved", "suggestions": suggestions}
			if rd != nil {
				if raw, err := json.Marshal(payload); err == nil {
					rd.SetEx(context.Background(), suggestionsCacheKey(params.UserID), string(raw), suggestionsCacheTTL)
				}
			}
			ctx.JSON(http.StatusOK, payload)
		})
	return g
}

// querySuggestions matches the event catalog against the liked categories
// and locations. In "and" mode both filters apply to one query; in "or"
// mode the two result sets are unioned.
func querySuggestions(ctx *gin.Context, categories []string, locations []string) ([]models.Event, error) {
	client := db.GetDb()
	base := client.Collection(db.COLLECTION_EVENTS).Query

	if config.SuggestionsMatchMode() == "and" {
		query := base
		if len(categories) > 0 {
			query = query.Where("category", "in", capFilters(categories))
		}
		if len(locations) > 0 {
			query = query.Where("location", "in", capFilters(locations))
		}
		docs, err := query.Limit(config.SUGGESTIONS_LIMIT).Documents(ctx).GetAll()
		if err != nil {
			return nil, err
		}
		return decodeSuggestionDocs(docs)
	}

	seen := make(map[string]bool)
	suggestions := []models.Event{}
	queries := []firestore.Query{}
	if len(categories) > 0 {
		queries = append(queries, base.Where("category", "in", capFilters(categories)))
	}
	if len(locations) > 0 {
		queries = append(queries, base.Where("location", "in", capFilters(locations)))
	}
	for _, query := range queries {
		docs, err := query.Limit(config.SUGGESTIONS_LIMIT).Documents(ctx).GetAll()
		if err != nil {
			return nil, err
		}
		decoded, err := decodeSuggestionDocs(docs)
		if err != nil {
			return nil, err
		}
		for _, e := range decoded {
			if seen[e.EventID] || len(suggestions) >= config.SUGGESTIONS_LIMIT {
				continue
			}
			seen[e.EventID] = true
			suggestions = append(suggestions, e)
		}
	}
	return suggestions, nil
}

func capFilters(values []string) []string {
	if len(values) > config.IN_QUERY_LIMIT {
		return values[:config.IN_QUERY_LIMIT]
	}
	return values
}

func decodeSuggestionDocs(docs []*firestore.DocumentSnapshot) ([]models.Event, error) {
	events := []models.Event{}
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
