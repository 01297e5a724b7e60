package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role constants for user authorization.
const (
	RoleUser       = "user"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

// DefaultProfilePicture is assigned at registration when the user has no avatar.
const DefaultProfilePicture = "https://i.ibb.co.com/7gtdY9x/pngtree-cartoon-style-female-user-profile-icon-vector-illustraton-png-image-6489286.png"

// PromotableRoles are the roles an admin may assign via the role endpoint.
// "user" is deliberately absent: promotion is one-way.
var PromotableRoles = []string{RoleInstructor, RoleAdmin}

type User struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Email           string             `bson:"email" json:"email"`
	Password        string             `bson:"password" json:"-"` // bcrypt hash
	Role            string             `bson:"role" json:"role"`  // user, instructor, admin
	ProfilePicture  string             `bson:"profilePicture" json:"profilePicture"`
	SelectedCourses []string           `bson:"selectedCourses,omitempty" json:"selectedCourses,omitempty"` // course id hex strings, set semantics
	NumberOfClasses int                `bson:"numberOfClasses,omitempty" json:"numberOfClasses,omitempty"`
	ClassesTaught   []string           `bson:"classesTaught,omitempty" json:"classesTaught,omitempty"` // course titles, set semantics
	Designation     string             `bson:"designation,omitempty" json:"designation,omitempty"`
	SocialLinks     map[string]string  `bson:"socialLinks,omitempty" json:"socialLinks,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}
