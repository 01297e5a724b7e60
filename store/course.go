package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/curiokids/backend/models"
)

func (db *DB) InsertCourse(ctx context.Context, course *models.Course) (primitive.ObjectID, error) {
	res, err := db.Courses().InsertOne(ctx, course, options.InsertOne())
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (db *DB) AllCourses(ctx context.Context) ([]models.Course, error) {
	return db.findCourses(ctx, bson.M{})
}

func (db *DB) CoursesByStatus(ctx context.Context, status string) ([]models.Course, error) {
	return db.findCourses(ctx, bson.M{"status": status})
}

func (db *DB) CoursesByInstructor(ctx context.Context, instructorID primitive.ObjectID) ([]models.Course, error) {
	return db.findCourses(ctx, bson.M{"instructorId": instructorID})
}

// CoursesByIDs resolves a user's selection against the courses collection.
func (db *DB) CoursesByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Course, error) {
	return db.findCourses(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (db *DB) findCourses(ctx context.Context, filter bson.M) ([]models.Course, error) {
	cur, err := db.Courses().Find(ctx, filter, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var courses []models.Course
	if err := cur.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (db *DB) CourseByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error) {
	var course models.Course
	err := db.Courses().FindOne(ctx, bson.M{"_id": id}).Decode(&course)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (db *DB) DeleteCourse(ctx context.Context, id primitive.ObjectID) error {
	_, err := db.Courses().DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// SetCourseStatus overwrites status and feedback. Validation of the status
// value happens in the handler.
func (db *DB) SetCourseStatus(ctx context.Context, id primitive.ObjectID, status string, feedback *string) error {
	_, err := db.Courses().UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "feedback": feedback}})
	return err
}
