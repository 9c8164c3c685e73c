package entity

import "time"

// Collection request statuses. Only StatusPending is ever written by this
// system; the others exist for records mutated by external tooling.
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCompleted = "completed"
)

// CollectionRequest is a scheduled waste pickup submitted by a user.
// UserName is a denormalized copy supplied by the caller at creation time
// and is not validated against the users collection.
type CollectionRequest struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	UserID       string    `json:"userId" bson:"user_id"`
	UserName     string    `json:"userName" bson:"user_name"`
	WasteType    string    `json:"wasteType" bson:"waste_type"`
	Location     string    `json:"location" bson:"location"`
	Address      string    `json:"address" bson:"address"`
	DateTime     time.Time `json:"dateTime" bson:"date_time"`
	Kilograms    float64   `json:"kilograms" bson:"kilograms"`
	RewardPoints float64   `json:"rewardPoints" bson:"reward_points"`
	Status       string    `json:"status" bson:"status"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}
