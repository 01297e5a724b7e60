package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Course status values. A course starts pending and only an admin moves it.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// StatusValid reports whether s is one of the known course statuses.
func StatusValid(s string) bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

type Course struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Age          string             `bson:"age,omitempty" json:"age,omitempty"`   // target age range, e.g. "6-9"
	Time         string             `bson:"time,omitempty" json:"time,omitempty"` // class schedule
	Seats        int                `bson:"seats,omitempty" json:"seats,omitempty"`
	Price        float64            `bson:"price,omitempty" json:"price,omitempty"`
	Image        string             `bson:"image,omitempty" json:"image,omitempty"`
	Video        string             `bson:"video,omitempty" json:"video,omitempty"`
	Status       string             `bson:"status" json:"status"`
	Feedback     *string            `bson:"feedback" json:"feedback"` // admin review note, null until set
	InstructorID primitive.ObjectID `bson:"instructorId" json:"instructorId"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
