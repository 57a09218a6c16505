package boot

import (
	"log"

	"cloud.google.com/go/firestore"
	"etix/src/db"
	"etix/src/lib"
)

func InitDb() *firestore.Client {
	client := db.GetDb()
	return client
}

func InitCache() {
	if rd := lib.GetRedisClient(); rd == nil {
		log.Println("Suggestions cache disabled: no REDIS_HOST configured")
	}
}

func InitMessaging() {
	if _, err := lib.GetFirebaseMessaging(); err != nil {
		log.Printf("Push notifications disabled: %s\n", err.Error())
	}
}
