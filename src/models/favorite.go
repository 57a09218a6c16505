package models

// Favorite is keyed by userId, one document per user. Events holds the
// liked event ids; membership is managed with ArrayUnion/ArrayRemove so a
// single toggle never introduces duplicates.
type Favorite struct {
	UserID string   `firestore:"userId" json:"userId"`
	Events []string `firestore:"events" json:"events"`
}
