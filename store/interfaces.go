package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/curiokids/backend/models"
)

// UserStore is the users collection as the handlers see it. *DB implements
// it against MongoDB; Memory implements it for tests.
type UserStore interface {
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	UserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (primitive.ObjectID, error)
	UpdateUserRole(ctx context.Context, id primitive.ObjectID, role, designation string, socialLinks map[string]string) error
	AddSelectedCourse(ctx context.Context, userID primitive.ObjectID, courseID string) error
	RemoveSelectedCourse(ctx context.Context, userID primitive.ObjectID, courseID string) error
	RecordCourseTaught(ctx context.Context, instructorID primitive.ObjectID, title string) error
}

type CourseStore interface {
	InsertCourse(ctx context.Context, course *models.Course) (primitive.ObjectID, error)
	AllCourses(ctx context.Context) ([]models.Course, error)
	CoursesByStatus(ctx context.Context, status string) ([]models.Course, error)
	CoursesByInstructor(ctx context.Context, instructorID primitive.ObjectID) ([]models.Course, error)
	CoursesByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Course, error)
	CourseByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error)
	DeleteCourse(ctx context.Context, id primitive.ObjectID) error
	SetCourseStatus(ctx context.Context, id primitive.ObjectID, status string, feedback *string) error
}

type TeacherStore interface {
	AllTeachers(ctx context.Context) ([]models.Teacher, error)
	InsertTeacher(ctx context.Context, teacher *models.Teacher) (primitive.ObjectID, error)
}
