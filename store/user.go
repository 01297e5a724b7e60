package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/curiokids/backend/models"
)

func (db *DB) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := db.Users().FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (db *DB) UserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	err := db.Users().FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (db *DB) CreateUser(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
	res, err := db.Users().InsertOne(ctx, user, options.InsertOne())
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// UpdateUserRole sets the role and, for instructor promotions, the public
// instructor profile fields. Courses the user already selected are untouched.
func (db *DB) UpdateUserRole(ctx context.Context, id primitive.ObjectID, role, designation string, socialLinks map[string]string) error {
	set := bson.M{"role": role}
	if designation != "" {
		set["designation"] = designation
	}
	if socialLinks != nil {
		set["socialLinks"] = socialLinks
	}
	_, err := db.Users().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

// AddSelectedCourse adds courseID to the user's selection. $addToSet keeps
// set semantics even without the handler's duplicate pre-check.
func (db *DB) AddSelectedCourse(ctx context.Context, userID primitive.ObjectID, courseID string) error {
	_, err := db.Users().UpdateOne(ctx, bson.M{"_id": userID},
		bson.M{"$addToSet": bson.M{"selectedCourses": courseID}})
	return err
}

func (db *DB) RemoveSelectedCourse(ctx context.Context, userID primitive.ObjectID, courseID string) error {
	_, err := db.Users().UpdateOne(ctx, bson.M{"_id": userID},
		bson.M{"$pull": bson.M{"selectedCourses": courseID}})
	return err
}

// RecordCourseTaught bumps the instructor's class count and records the
// course title. Runs after the course insert; the two writes are separate
// documents and are not transactional.
func (db *DB) RecordCourseTaught(ctx context.Context, instructorID primitive.ObjectID, title string) error {
	_, err := db.Users().UpdateOne(ctx, bson.M{"_id": instructorID}, bson.M{
		"$inc":      bson.M{"numberOfClasses": 1},
		"$addToSet": bson.M{"classesTaught": title},
	})
	return err
}
