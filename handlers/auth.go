package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/curiokids/backend/middleware"
	"github.com/curiokids/backend/models"
	"github.com/curiokids/backend/store"
)

type AuthHandler struct {
	Users     store.UserStore
	JWTSecret string
	TokenTTL  time.Duration
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// Register creates a user with the default role and profile picture.
// The existence check and the insert are two store calls; concurrent
// registrations for the same email can slip through.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"message":"invalid json"}`, http.StatusBadRequest)
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Name == "" || req.Email == "" || req.Password == "" {
		http.Error(w, `{"message":"name, email and password required"}`, http.StatusBadRequest)
		return
	}
	existing, err := h.Users.UserByEmail(r.Context(), req.Email)
	if err != nil {
		http.Error(w, `{"message":"registration failed"}`, http.StatusInternalServerError)
		return
	}
	if existing != nil {
		http.Error(w, `{"message":"User already exists"}`, http.StatusBadRequest)
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, `{"message":"registration failed"}`, http.StatusInternalServerError)
		return
	}
	user := &models.User{
		Name:           req.Name,
		Email:          req.Email,
		Password:       string(hash),
		Role:           models.RoleUser,
		ProfilePicture: models.DefaultProfilePicture,
		CreatedAt:      time.Now(),
	}
	id, err := h.Users.CreateUser(r.Context(), user)
	if err != nil {
		http.Error(w, `{"message":"registration failed"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{
		"id":      id.Hex(),
		"message": "User registered successfully",
	})
}

// Login checks credentials and issues a session token. Unknown email and
// wrong password get the same response.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"message":"invalid json"}`, http.StatusBadRequest)
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	user, err := h.Users.UserByEmail(r.Context(), req.Email)
	if err != nil {
		http.Error(w, `{"message":"login failed"}`, http.StatusInternalServerError)
		return
	}
	if user == nil {
		http.Error(w, `{"message":"Invalid credentials"}`, http.StatusBadRequest)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		http.Error(w, `{"message":"Invalid credentials"}`, http.StatusBadRequest)
		return
	}
	token, err := h.IssueToken(user)
	if err != nil {
		http.Error(w, `{"message":"could not create token"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(LoginResponse{Token: token})
}

type ProfileResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	ProfilePicture string `json:"profilePicture"`
}

// Protected returns the caller's profile, re-read from the store so role
// changes since login are visible.
func (h *AuthHandler) Protected(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	id, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusForbidden)
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
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ProfileResponse{
		ID:             user.ID.Hex(),
		Name:           user.Name,
		Email:          user.Email,
		Role:           user.Role,
		ProfilePicture: user.ProfilePicture,
	})
}

// IssueToken signs a session token carrying the user's id and a profile
// snapshot. The snapshot goes stale on role changes; only re-login
// refreshes it.
func (h *AuthHandler) IssueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &middleware.Claims{
		UserID:         user.ID.Hex(),
		Name:           user.Name,
		Email:          user.Email,
		Role:           user.Role,
		ProfilePicture: user.ProfilePicture,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(h.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.JWTSecret))
}
