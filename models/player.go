package models

import "time"

type PlayerSecurity struct {
	Password     string `bson:"-" json:"password,omitempty"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	Token        string `bson:"-" json:"token,omitempty"`
	TokenHash    string `bson:"tokenHash" json:"-"`
}

// Player represents an app user looking for runs, partners and trainers.
type Player struct {
	ID             string         `bson:"id" json:"id"`
	Name           string         `bson:"name" json:"name"`
	Email          string         `bson:"email" json:"email"`
	Avatar         string         `bson:"avatar,omitempty" json:"avatar,omitempty"`
	City           string         `bson:"city" json:"city,omitempty"`
	FavoriteSports []string       `bson:"favoriteSports" json:"favoriteSports,omitempty"`
	SkillLevel     string         `bson:"skillLevel" json:"skillLevel,omitempty"` // Beginner/Intermediate/Advanced
	LocationGeo    GeoPoint       `bson:"locationGeo" json:"locationGeo,omitzero"`
	Security       PlayerSecurity `bson:"security" json:"security,omitzero"`
	FCMToken       string         `bson:"fcmToken,omitempty" json:"-"`
	LastActiveAt   time.Time      `bson:"lastActiveAt" json:"lastActiveAt,omitzero"`
	CreatedAt      time.Time      `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt      time.Time      `bson:"updatedAt" json:"updatedAt,omitzero"`
}
