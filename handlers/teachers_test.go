package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curiokids/backend/models"
)

func TestTeachersCRUD(t *testing.T) {
	e := setup(t)

	rec := e.do(http.MethodGet, "/teachers", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var teachers []models.Teacher
	decode(t, rec, &teachers)
	assert.Empty(t, teachers)

	rec = e.do(http.MethodPost, "/teachers", "", models.Teacher{Name: "Ms. Poppins", Subject: "Music"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = e.do(http.MethodGet, "/teachers", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &teachers)
	require.Len(t, teachers, 1)
	assert.Equal(t, "Ms. Poppins", teachers[0].Name)
}

func TestCreateTeacherRequiresName(t *testing.T) {
	e := setup(t)
	rec := e.do(http.MethodPost, "/teachers", "", models.Teacher{Subject: "Music"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
