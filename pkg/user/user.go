package user

import "time"

type Membership string

const (
	Free    Membership = "free"
	Premium            = "premium"
)

type User struct {
	ID         interface{} `bson:"_id,omitempty" json:"-"`
	Email      string      `bson:"email" json:"email"`
	Name       string      `bson:"name" json:"name"`
	Image      string      `bson:"image" json:"image"`
	Membership Membership  `bson:"membership" json:"membership"`
	CreatedAt  time.Time   `bson:"createdAt" json:"createdAt"`
}
