package lib

import (
	"context"
	"log"
	"os"
	"path"

	"cloud.google.com/go/firestore"
	"etix/src/config"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

var innerApp *firebase.App
var innerFirestore *firestore.Client
var innerMessaging *messaging.Client

func getOpts() *option.ClientOption {
	secretsPath := os.Getenv("SECRETS_DIR")
	opt := option.WithCredentialsFile(path.Join(secretsPath, "admin-sdk-credentials.json"))
	return &opt
}

func getApp() *firebase.App {
	if innerApp != nil {
		return innerApp
	}
	opt := getOpts()
	cfg := &firebase.Config{ProjectID: config.GetProjectID()}
	app, err := firebase.NewApp(context.Background(), cfg, *opt)
	if err != nil {
		log.Fatalf("error initializing app: %v\n", err.Error())
	}
	innerApp = app
	return app
}

func GetFirestore() (*firestore.Client, error) {
	if innerFirestore != nil {
		return innerFirestore, nil
	}
	client, err := getApp().Firestore(context.Background())
	if err != nil {
		log.Printf("error initializing Firestore: %v\n", err.Error())
		return nil, err
	}
	innerFirestore = client
	return client, nil
}

func GetFirebaseMessaging() (*messaging.Client, error) {
	if innerMessaging != nil {
		return innerMessaging, nil
	}
	msg, err := getApp().Messaging(context.Background())
	if err != nil {
		log.Printf("error initializing FCM: %v\n", err.Error())
		return nil, err
	}
	innerMessaging = msg
	return msg, nil
}

func NewFirebaseApp(app *firebase.App) {
	innerApp = app
}
