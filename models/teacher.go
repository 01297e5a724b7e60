package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Teacher is a flat showcase document with no link to Course or User.
// It predates Course.InstructorID and the two were never reconciled.
type Teacher struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Subject   string             `bson:"subject,omitempty" json:"subject,omitempty"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	Bio       string             `bson:"bio,omitempty" json:"bio,omitempty"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}
