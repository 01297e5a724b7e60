package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/curiokids/backend/models"
)

func (db *DB) AllTeachers(ctx context.Context) ([]models.Teacher, error) {
	cur, err := db.Teachers().Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var teachers []models.Teacher
	if err := cur.All(ctx, &teachers); err != nil {
		return nil, err
	}
	return teachers, nil
}

func (db *DB) InsertTeacher(ctx context.Context, teacher *models.Teacher) (primitive.ObjectID, error) {
	res, err := db.Teachers().InsertOne(ctx, teacher, options.InsertOne())
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}
