package config

import (
	"os"
)

func GetProjectID() string {
	FIREBASE_PROJECT_ID := os.Getenv("FIREBASE_PROJECT_ID")
	return FIREBASE_PROJECT_ID
}

// SuggestionsMatchMode controls how category and location filters combine
// when building event suggestions. Defaults to "and"; set
// SUGGESTIONS_MATCH=or for the broader union behavior.
func SuggestionsMatchMode() string {
	mode := os.Getenv("SUGGESTIONS_MATCH")
	if mode != "or" {
		return "and"
	}
	return mode
}

const TIME_PARSE_FORMAT = "2006-01-02"

// Firestore caps `in` filters at 30 values per query.
const IN_QUERY_LIMIT = 30

// Firestore caps a WriteBatch at 500 writes.
const BATCH_WRITE_LIMIT = 500

const SUGGESTIONS_LIMIT = 10
