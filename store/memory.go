package store

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/curiokids/backend/models"
)

// Memory is an in-memory stand-in for the Mongo-backed DB, used by tests.
// It mirrors the document-store semantics the handlers rely on: set-style
// array updates and nil results for missing documents.
type Memory struct {
	mu       sync.RWMutex
	users    map[primitive.ObjectID]*models.User
	courses  map[primitive.ObjectID]*models.Course
	teachers map[primitive.ObjectID]*models.Teacher
}

func NewMemory() *Memory {
	return &Memory{
		users:    make(map[primitive.ObjectID]*models.User),
		courses:  make(map[primitive.ObjectID]*models.Course),
		teachers: make(map[primitive.ObjectID]*models.Teacher),
	}
}

func (m *Memory) UserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *Memory) UserByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *Memory) CreateUser(_ context.Context, user *models.User) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := primitive.NewObjectID()
	cp := *user
	cp.ID = id
	m.users[id] = &cp
	return id, nil
}

func (m *Memory) UpdateUserRole(_ context.Context, id primitive.ObjectID, role, designation string, socialLinks map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		u.Role = role
		if designation != "" {
			u.Designation = designation
		}
		if socialLinks != nil {
			u.SocialLinks = socialLinks
		}
	}
	return nil
}

func (m *Memory) AddSelectedCourse(_ context.Context, userID primitive.ObjectID, courseID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return nil
	}
	for _, id := range u.SelectedCourses {
		if id == courseID {
			return nil
		}
	}
	u.SelectedCourses = append(u.SelectedCourses, courseID)
	return nil
}

func (m *Memory) RemoveSelectedCourse(_ context.Context, userID primitive.ObjectID, courseID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return nil
	}
	kept := u.SelectedCourses[:0]
	for _, id := range u.SelectedCourses {
		if id != courseID {
			kept = append(kept, id)
		}
	}
	u.SelectedCourses = kept
	return nil
}

func (m *Memory) RecordCourseTaught(_ context.Context, instructorID primitive.ObjectID, title string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[instructorID]
	if !ok {
		return nil
	}
	u.NumberOfClasses++
	for _, t := range u.ClassesTaught {
		if t == title {
			return nil
		}
	}
	u.ClassesTaught = append(u.ClassesTaught, title)
	return nil
}

func (m *Memory) InsertCourse(_ context.Context, course *models.Course) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := primitive.NewObjectID()
	cp := *course
	cp.ID = id
	m.courses[id] = &cp
	return id, nil
}

// sortCourses matches the Mongo queries' newest-first order.
func sortCourses(courses []models.Course) []models.Course {
	sort.Slice(courses, func(i, j int) bool {
		return courses[i].CreatedAt.After(courses[j].CreatedAt)
	})
	return courses
}

func (m *Memory) AllCourses(_ context.Context) ([]models.Course, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Course, 0, len(m.courses))
	for _, c := range m.courses {
		out = append(out, *c)
	}
	return sortCourses(out), nil
}

func (m *Memory) CoursesByStatus(_ context.Context, status string) ([]models.Course, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.Course
	for _, c := range m.courses {
		if c.Status == status {
			out = append(out, *c)
		}
	}
	return sortCourses(out), nil
}

func (m *Memory) CoursesByInstructor(_ context.Context, instructorID primitive.ObjectID) ([]models.Course, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.Course
	for _, c := range m.courses {
		if c.InstructorID == instructorID {
			out = append(out, *c)
		}
	}
	return sortCourses(out), nil
}

func (m *Memory) CoursesByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Course, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.Course
	for _, id := range ids {
		if c, ok := m.courses[id]; ok {
			out = append(out, *c)
		}
	}
	return sortCourses(out), nil
}

func (m *Memory) CourseByID(_ context.Context, id primitive.ObjectID) (*models.Course, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.courses[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *Memory) DeleteCourse(_ context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.courses, id)
	return nil
}

func (m *Memory) SetCourseStatus(_ context.Context, id primitive.ObjectID, status string, feedback *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.courses[id]; ok {
		c.Status = status
		c.Feedback = feedback
	}
	return nil
}

func (m *Memory) AllTeachers(_ context.Context) ([]models.Teacher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Teacher, 0, len(m.teachers))
	for _, t := range m.teachers {
		out = append(out, *t)
	}
	return out, nil
}

func (m *Memory) InsertTeacher(_ context.Context, teacher *models.Teacher) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := primitive.NewObjectID()
	cp := *teacher
	cp.ID = id
	m.teachers[id] = &cp
	return id, nil
}
