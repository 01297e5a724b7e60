package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/curiokids/backend/middleware"
	"github.com/curiokids/backend/models"
	"github.com/curiokids/backend/service"
	"github.com/curiokids/backend/store"
)

// Deps bundles everything the router needs so tests can mount the exact
// production routes over an in-memory store.
type Deps struct {
	Users          store.UserStore
	Courses        store.CourseStore
	Teachers       store.TeacherStore
	Mailer         ReviewNotifier
	S3             *service.S3Service
	JWTSecret      string
	TokenTTL       time.Duration
	AllowedOrigins []string
	MaxUploadBytes int64
}

func NewRouter(d Deps) chi.Router {
	auth := &AuthHandler{Users: d.Users, JWTSecret: d.JWTSecret, TokenTTL: d.TokenTTL}
	courses := &CoursesHandler{Users: d.Users, Courses: d.Courses, Mailer: d.Mailer}
	users := &UsersHandler{Users: d.Users}
	teachers := &TeachersHandler{Teachers: d.Teachers}
	upload := &UploadHandler{S3: d.S3, MaxBytes: d.MaxUploadBytes}

	requireAuth := middleware.Auth(d.JWTSecret)
	requireInstructor := middleware.RequireRole(d.Users, models.RoleInstructor)
	requireAdmin := middleware.RequireRole(d.Users, models.RoleAdmin)

	r := chi.NewRouter()
	r.Use(middleware.CORS(d.AllowedOrigins))
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Hello from Curio Kids Server.."}`))
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Post("/register", auth.Register)
	r.Post("/login", auth.Login)

	r.Get("/courses", courses.List)
	r.Get("/courses/approved", courses.ListApproved)
	r.Get("/teachers", teachers.List)
	r.Post("/teachers", teachers.Create)

	// Any logged-in user
	r.Group(func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/protected", auth.Protected)
		r.Post("/courses/select", courses.Select)
		r.Get("/courses/selected", courses.ListSelected)
		r.Delete("/courses/remove", courses.Remove)
		r.Delete("/courses/remove/{id}", courses.Remove)
	})

	// Instructors
	r.Group(func(r chi.Router) {
		r.Use(requireAuth, requireInstructor)
		r.Post("/courses", courses.Create)
		r.Get("/instructor/courses", courses.ListMine)
		r.Delete("/courses/{id}", courses.Delete)
		r.Post("/upload", upload.Upload)
	})

	// Admins
	r.Group(func(r chi.Router) {
		r.Use(requireAuth, requireAdmin)
		r.Patch("/admin/courses/{id}", courses.SetStatus)
		r.Patch("/admin/users/role/{id}", users.Promote)
	})

	return r
}
