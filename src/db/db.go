package db

import (
	"log"

	"cloud.google.com/go/firestore"
	"etix/src/lib"
)

const (
	COLLECTION_EVENTS        = "events"
	COLLECTION_USERS         = "users"
	COLLECTION_TICKETS       = "tickets"
	COLLECTION_PAYMENTS      = "payments"
	COLLECTION_ATTENDANCE    = "attendance"
	COLLECTION_FAVORITES     = "favorites"
	COLLECTION_NOTIFICATIONS = "notifications"
)

var db *firestore.Client

func GetDb() *firestore.Client {
	if db != nil {
		return db
	}
	client, err := lib.GetFirestore()
	if err != nil {
		log.Printf("Error connecting to Firestore: %s\n", err.Error())
		panic(err)
	}
	db = client
	return db
}

func NewDB(newdb *firestore.Client) {
	db = newdb
}
