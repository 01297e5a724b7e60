package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/curiokids/backend/models"
	"github.com/curiokids/backend/store"
)

type UsersHandler struct {
	Users store.UserStore
}

type PromoteRequest struct {
	Role        string            `json:"role"`
	Designation string            `json:"designation"`
	SocialLinks map[string]string `json:"socialLinks"`
}

type PromoteResponse struct {
	ID          string `json:"id"`
	Role        string `json:"role"`
	Designation string `json:"designation,omitempty"`
}

// Promote raises a user to instructor or admin. "user" is not an accepted
// target, so there is no demotion path through this endpoint. Already-issued
// tokens keep their old embedded role; authorization is unaffected because
// the role middleware reads the document.
func (h *UsersHandler) Promote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, `{"message":"invalid user id"}`, http.StatusBadRequest)
		return
	}
	var req PromoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"message":"invalid json"}`, http.StatusBadRequest)
		return
	}
	role := strings.TrimSpace(strings.ToLower(req.Role))
	allowed := false
	for _, p := range models.PromotableRoles {
		if role == p {
			allowed = true
			break
		}
	}
	if !allowed {
		http.Error(w, `{"message":"Invalid role; use instructor or admin"}`, http.StatusBadRequest)
		return
	}
	user, err := h.Users.UserByID(r.Context(), id)
	if err != nil {
		http.Error(w, `{"message":"failed to load user"}`, http.StatusInternalServerError)
		return
	}
	if user == nil {
		http.Error(w, `{"message":"User not found"}`, http.StatusNotFound)
		return
	}
	designation := ""
	var links map[string]string
	if role == models.RoleInstructor {
		designation = req.Designation
		links = req.SocialLinks
	}
	if err := h.Users.UpdateUserRole(r.Context(), id, role, designation, links); err != nil {
		http.Error(w, `{"message":"failed to update role"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(PromoteResponse{ID: id.Hex(), Role: role, Designation: designation})
}
