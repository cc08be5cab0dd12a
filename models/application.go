package models

import "time"

// StatusPending is the status every new application starts with. Status is
// free text beyond that: the admin panel offers a fixed set of choices but
// the storage layer accepts any value.
const StatusPending = "Pending"

type Application struct {
	ID        string    `json:"id" bson:"_id,omitempty" db:"id"`
	UserID    string    `json:"user_id" bson:"user" db:"user_id"`
	PostID    string    `json:"post_id" bson:"post" db:"post_id"`
	StartDate time.Time `json:"start_date" bson:"startDate" db:"start_date"`
	EndDate   time.Time `json:"end_date" bson:"endDate" db:"end_date"`
	Status    string    `json:"status" bson:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" bson:"createdAt" db:"created_at"`

	// Resolved at read time; nil when the referenced record no longer exists.
	User *User `json:"user,omitempty" bson:"-"`
	Post *Post `json:"post,omitempty" bson:"-"`
}
