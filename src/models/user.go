package models

type User struct {
	UserID    string `firestore:"userId" json:"userId"`
	Name      string `firestore:"name" json:"name"`
	Email     string `firestore:"email" json:"email"`
	AvatarURL string `firestore:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
}
