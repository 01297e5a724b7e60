package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curiokids/backend/models"
)

func TestPromoteToInstructor(t *testing.T) {
	e := setup(t)
	_, adminToken := e.createUser(t, "Root", "root@example.com", "pw", "admin")
	target, _ := e.createUser(t, "Uli", "uli@example.com", "pw", "user")

	rec := e.do(http.MethodPatch, "/admin/users/role/"+target.ID.Hex(), adminToken, PromoteRequest{
		Role:        "instructor",
		Designation: "Senior Art Teacher",
		SocialLinks: map[string]string{"twitter": "https://twitter.com/uli"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	updated, err := e.db.UserByID(context.Background(), target.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleInstructor, updated.Role)
	assert.Equal(t, "Senior Art Teacher", updated.Designation)
	assert.Equal(t, "https://twitter.com/uli", updated.SocialLinks["twitter"])
}

func TestPromoteRejectsUserRole(t *testing.T) {
	e := setup(t)
	_, adminToken := e.createUser(t, "Root", "root@example.com", "pw", "admin")
	target, _ := e.createUser(t, "Ines", "ines@example.com", "pw", "instructor")

	// Demotion back to "user" is not available through this endpoint.
	rec := e.do(http.MethodPatch, "/admin/users/role/"+target.ID.Hex(), adminToken, PromoteRequest{Role: "user"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = e.do(http.MethodPatch, "/admin/users/role/"+target.ID.Hex(), adminToken, PromoteRequest{Role: "superuser"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPromoteUnknownUser(t *testing.T) {
	e := setup(t)
	_, adminToken := e.createUser(t, "Root", "root@example.com", "pw", "admin")

	rec := e.do(http.MethodPatch, "/admin/users/role/64b0c0ffee0000000000beef", adminToken, PromoteRequest{Role: "admin"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPromoteRequiresAdmin(t *testing.T) {
	e := setup(t)
	_, token := e.createUser(t, "Ines", "ines@example.com", "pw", "instructor")
	target, _ := e.createUser(t, "Uli", "uli@example.com", "pw", "user")

	rec := e.do(http.MethodPatch, "/admin/users/role/"+target.ID.Hex(), token, PromoteRequest{Role: "admin"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

// Promotion takes effect on the next request even though the target's
// outstanding token still claims the old role.
func TestPromotionEffectiveWithoutRelogin(t *testing.T) {
	e := setup(t)
	_, adminToken := e.createUser(t, "Root", "root@example.com", "pw", "admin")
	target, targetToken := e.createUser(t, "Uli", "uli@example.com", "pw", "user")

	rec := e.do(http.MethodPost, "/courses", targetToken, CreateCourseRequest{Title: "Early"})
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = e.do(http.MethodPatch, "/admin/users/role/"+target.ID.Hex(), adminToken, PromoteRequest{Role: "instructor"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = e.do(http.MethodPost, "/courses", targetToken, CreateCourseRequest{Title: "After promotion"})
	assert.Equal(t, http.StatusCreated, rec.Code)
}
