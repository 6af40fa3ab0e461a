package notifications

import "time"

const TypeNewPost = "new_post"

type Notification struct {
	ID        interface{} `bson:"_id,omitempty" json:"id"`
	UserEmail string      `bson:"userEmail" json:"userEmail"`
	Type      string      `bson:"type" json:"type"`
	Message   string      `bson:"message" json:"message"`
	Read      bool        `bson:"read" json:"read"`
	CreatedAt time.Time   `bson:"createdAt" json:"createdAt"`
}
