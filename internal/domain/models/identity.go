package models

import "time"

// Identity is the caller identity forwarded by the authentication layer in
// front of this service.
type Identity struct {
	UserID       string
	Organization string
	Role         string
}

// ActivityRecord is one audit entry describing who did what.
type ActivityRecord struct {
	User         string    `bson:"user" json:"user"`
	Organization string    `bson:"organization" json:"organization"`
	Action       string    `bson:"action" json:"action"`
	At           time.Time `bson:"at" json:"at"`
}
