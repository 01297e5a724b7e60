package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/curiokids/backend/models"
	"github.com/curiokids/backend/store"
)

// TeachersHandler serves the legacy teachers collection. These documents
// are standalone showcase entries with no tie to courses or user accounts.
type TeachersHandler struct {
	Teachers store.TeacherStore
}

func (h *TeachersHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	teachers, err := h.Teachers.AllTeachers(r.Context())
	if err != nil {
		http.Error(w, `{"message":"failed to list teachers"}`, http.StatusInternalServerError)
		return
	}
	if teachers == nil {
		teachers = []models.Teacher{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(teachers)
}

func (h *TeachersHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var teacher models.Teacher
	if err := json.NewDecoder(r.Body).Decode(&teacher); err != nil {
		http.Error(w, `{"message":"invalid json"}`, http.StatusBadRequest)
		return
	}
	if teacher.Name == "" {
		http.Error(w, `{"message":"name required"}`, http.StatusBadRequest)
		return
	}
	teacher.CreatedAt = time.Now()
	id, err := h.Teachers.InsertTeacher(r.Context(), &teacher)
	if err != nil {
		http.Error(w, `{"message":"failed to create teacher"}`, http.StatusInternalServerError)
		return
	}
	teacher.ID = id
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(teacher)
}
