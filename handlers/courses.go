package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/curiokids/backend/log"
	"github.com/curiokids/backend/middleware"
	"github.com/curiokids/backend/models"
	"github.com/curiokids/backend/store"
)

// ReviewNotifier tells an instructor about an admin decision on their
// course. *service.Mailer implements it over SMTP.
type ReviewNotifier interface {
	SendCourseReviewed(to string, course *models.Course) error
}

type CoursesHandler struct {
	Users   store.UserStore
	Courses store.CourseStore
	Mailer  ReviewNotifier // nil when SMTP is not configured
}

// List returns every course regardless of status.
func (h *CoursesHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	courses, err := h.Courses.AllCourses(r.Context())
	if err != nil {
		http.Error(w, `{"message":"failed to list courses"}`, http.StatusInternalServerError)
		return
	}
	writeCourses(w, courses)
}

// ListApproved is the browse endpoint for enrollable content; pending and
// rejected courses never appear here.
func (h *CoursesHandler) ListApproved(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	courses, err := h.Courses.CoursesByStatus(r.Context(), models.StatusApproved)
	if err != nil {
		http.Error(w, `{"message":"failed to list courses"}`, http.StatusInternalServerError)
		return
	}
	writeCourses(w, courses)
}

type CreateCourseRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Age         string  `json:"age"`
	Time        string  `json:"time"`
	Seats       int     `json:"seats"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Video       string  `json:"video"`
}

// Create inserts a pending course owned by the caller, then bumps the
// instructor's teaching stats. The two writes hit different documents and
// are not atomic.
func (h *CoursesHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	instructorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusForbidden)
		return
	}
	var req CreateCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"message":"invalid json"}`, http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		http.Error(w, `{"message":"title required"}`, http.StatusBadRequest)
		return
	}
	course := &models.Course{
		Title:        req.Title,
		Description:  req.Description,
		Age:          req.Age,
		Time:         req.Time,
		Seats:        req.Seats,
		Price:        req.Price,
		Image:        req.Image,
		Video:        req.Video,
		Status:       models.StatusPending,
		Feedback:     nil,
		InstructorID: instructorID,
		CreatedAt:    time.Now(),
	}
	id, err := h.Courses.InsertCourse(r.Context(), course)
	if err != nil {
		http.Error(w, `{"message":"failed to create course"}`, http.StatusInternalServerError)
		return
	}
	course.ID = id
	if err := h.Users.RecordCourseTaught(r.Context(), instructorID, course.Title); err != nil {
		// Course is already persisted; the instructor's counters lag until
		// the next successful create.
		log.Logger.Warn("failed to update instructor stats",
			zap.String("instructorId", instructorID.Hex()), zap.Error(err))
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(course)
}

// ListMine returns the caller's own courses, any status.
func (h *CoursesHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	instructorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusForbidden)
		return
	}
	courses, err := h.Courses.CoursesByInstructor(r.Context(), instructorID)
	if err != nil {
		http.Error(w, `{"message":"failed to list courses"}`, http.StatusInternalServerError)
		return
	}
	writeCourses(w, courses)
}

// Delete removes a course the caller owns. Ownership is a direct id
// comparison against the course's instructorId.
func (h *CoursesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	instructorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusForbidden)
		return
	}
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, `{"message":"invalid course id"}`, http.StatusBadRequest)
		return
	}
	course, err := h.Courses.CourseByID(r.Context(), id)
	if err != nil {
		http.Error(w, `{"message":"failed to load course"}`, http.StatusInternalServerError)
		return
	}
	if course == nil {
		http.Error(w, `{"message":"Course not found"}`, http.StatusNotFound)
		return
	}
	if course.InstructorID != instructorID {
		w.WriteHeader(http.StatusForbidden)
		return
	}
	if err := h.Courses.DeleteCourse(r.Context(), id); err != nil {
		http.Error(w, `{"message":"failed to delete course"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Course deleted successfully"})
}

type SetStatusRequest struct {
	Status   string  `json:"status"`
	Feedback *string `json:"feedback"`
}

// SetStatus is the admin review action: approve or reject (or reset to
// pending) with optional feedback. The owning instructor is notified by
// email when a mailer is configured; a send failure does not fail the
// request.
func (h *CoursesHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, `{"message":"invalid course id"}`, http.StatusBadRequest)
		return
	}
	var req SetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"message":"invalid json"}`, http.StatusBadRequest)
		return
	}
	if !models.StatusValid(req.Status) {
		http.Error(w, `{"message":"Invalid status"}`, http.StatusBadRequest)
		return
	}
	course, err := h.Courses.CourseByID(r.Context(), id)
	if err != nil {
		http.Error(w, `{"message":"failed to load course"}`, http.StatusInternalServerError)
		return
	}
	if course == nil {
		http.Error(w, `{"message":"Course not found"}`, http.StatusNotFound)
		return
	}
	if err := h.Courses.SetCourseStatus(r.Context(), id, req.Status, req.Feedback); err != nil {
		http.Error(w, `{"message":"failed to update course"}`, http.StatusInternalServerError)
		return
	}
	course.Status = req.Status
	course.Feedback = req.Feedback
	if h.Mailer != nil {
		if owner, err := h.Users.UserByID(r.Context(), course.InstructorID); err == nil && owner != nil {
			if err := h.Mailer.SendCourseReviewed(owner.Email, course); err != nil {
				log.Logger.Warn("course review mail failed",
					zap.String("courseId", id.Hex()), zap.Error(err))
			}
		}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(course)
}

type SelectCourseRequest struct {
	CourseID string `json:"courseId"`
}

// Select adds the course to the caller's selection. The membership
// pre-check only exists to produce a distinguishable "already selected"
// response; the store add is a set union either way.
func (h *CoursesHandler) Select(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusForbidden)
		return
	}
	var req SelectCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"message":"invalid json"}`, http.StatusBadRequest)
		return
	}
	courseID, err := primitive.ObjectIDFromHex(req.CourseID)
	if err != nil {
		http.Error(w, `{"message":"invalid course id"}`, http.StatusBadRequest)
		return
	}
	course, err := h.Courses.CourseByID(r.Context(), courseID)
	if err != nil {
		http.Error(w, `{"message":"failed to load course"}`, http.StatusInternalServerError)
		return
	}
	if course == nil {
		http.Error(w, `{"message":"Course not found"}`, http.StatusNotFound)
		return
	}
	user, err := h.Users.UserByID(r.Context(), userID)
	if err != nil || user == nil {
		http.Error(w, `{"message":"failed to load user"}`, http.StatusInternalServerError)
		return
	}
	for _, selected := range user.SelectedCourses {
		if selected == req.CourseID {
			http.Error(w, `{"message":"Course already selected"}`, http.StatusBadRequest)
			return
		}
	}
	if err := h.Users.AddSelectedCourse(r.Context(), userID, req.CourseID); err != nil {
		http.Error(w, `{"message":"failed to select course"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Course selected successfully"})
}

// ListSelected resolves the caller's selection ids to full course
// documents.
func (h *CoursesHandler) ListSelected(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusForbidden)
		return
	}
	user, err := h.Users.UserByID(r.Context(), userID)
	if err != nil {
		http.Error(w, `{"message":"failed to load user"}`, http.StatusInternalServerError)
		return
	}
	if user == nil || len(user.SelectedCourses) == 0 {
		http.Error(w, `{"message":"No courses selected"}`, http.StatusNotFound)
		return
	}
	ids := make([]primitive.ObjectID, 0, len(user.SelectedCourses))
	for _, s := range user.SelectedCourses {
		id, err := primitive.ObjectIDFromHex(s)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	courses, err := h.Courses.CoursesByIDs(r.Context(), ids)
	if err != nil {
		http.Error(w, `{"message":"failed to list courses"}`, http.StatusInternalServerError)
		return
	}
	writeCourses(w, courses)
}

// Remove drops a course id from the caller's selection. The id comes from
// the URL when present, else from the body. Removing an absent id is not
// an error.
func (h *CoursesHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusForbidden)
		return
	}
	courseID := chi.URLParam(r, "id")
	if courseID == "" {
		var req SelectCourseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CourseID == "" {
			http.Error(w, `{"message":"courseId required"}`, http.StatusBadRequest)
			return
		}
		courseID = req.CourseID
	}
	if err := h.Users.RemoveSelectedCourse(r.Context(), userID, courseID); err != nil {
		http.Error(w, `{"message":"failed to remove course"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Course removed successfully"})
}

func writeCourses(w http.ResponseWriter, courses []models.Course) {
	if courses == nil {
		courses = []models.Course{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(courses)
}
