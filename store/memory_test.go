package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/curiokids/backend/models"
)

func TestMemorySelectedCoursesSetSemantics(t *testing.T) {
	db := NewMemory()
	ctx := context.Background()
	id, err := db.CreateUser(ctx, &models.User{Email: "u@example.com", Role: models.RoleUser})
	require.NoError(t, err)

	// Adding the same id twice keeps one entry.
	require.NoError(t, db.AddSelectedCourse(ctx, id, "c1"))
	require.NoError(t, db.AddSelectedCourse(ctx, id, "c1"))
	require.NoError(t, db.AddSelectedCourse(ctx, id, "c2"))
	u, err := db.UserByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"c1", "c2"}, u.SelectedCourses)

	// Removal is idempotent.
	require.NoError(t, db.RemoveSelectedCourse(ctx, id, "c1"))
	require.NoError(t, db.RemoveSelectedCourse(ctx, id, "c1"))
	u, err = db.UserByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"c2"}, u.SelectedCourses)
}

func TestMemoryRecordCourseTaught(t *testing.T) {
	db := NewMemory()
	ctx := context.Background()
	id, err := db.CreateUser(ctx, &models.User{Email: "i@example.com", Role: models.RoleInstructor})
	require.NoError(t, err)

	require.NoError(t, db.RecordCourseTaught(ctx, id, "Chess"))
	require.NoError(t, db.RecordCourseTaught(ctx, id, "Chess"))
	u, err := db.UserByID(ctx, id)
	require.NoError(t, err)
	// Count increments per create; the title set stays deduplicated.
	assert.Equal(t, 2, u.NumberOfClasses)
	assert.Equal(t, []string{"Chess"}, u.ClassesTaught)
}

func TestMemoryMissingDocuments(t *testing.T) {
	db := NewMemory()
	ctx := context.Background()
	u, err := db.UserByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, u)
	c, err := db.CourseByID(ctx, primitive.NewObjectID())
	require.NoError(t, err)
	assert.Nil(t, c)
}

// Course listings come back newest first, like the Mongo queries.
func TestMemoryCoursesNewestFirst(t *testing.T) {
	db := NewMemory()
	ctx := context.Background()
	base := time.Now()
	var ids []primitive.ObjectID
	for i, title := range []string{"old", "mid", "new"} {
		id, err := db.InsertCourse(ctx, &models.Course{
			Title:     title,
			Status:    models.StatusApproved,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	all, err := db.AllCourses(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"new", "mid", "old"}, []string{all[0].Title, all[1].Title, all[2].Title})

	approved, err := db.CoursesByStatus(ctx, models.StatusApproved)
	require.NoError(t, err)
	require.Len(t, approved, 3)
	assert.Equal(t, "new", approved[0].Title)

	resolved, err := db.CoursesByIDs(ctx, ids)
	require.NoError(t, err)
	require.Len(t, resolved, 3)
	assert.Equal(t, "new", resolved[0].Title)
}
