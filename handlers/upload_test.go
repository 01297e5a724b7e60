package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) doUpload(t *testing.T, token, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if filename != "" {
		part, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func TestUploadRequiresInstructor(t *testing.T) {
	e := setup(t)
	_, userToken := e.createUser(t, "Uli", "uli@example.com", "pw", "user")

	rec := e.doUpload(t, "", "pic.png", []byte("png-bytes"))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = e.doUpload(t, userToken, "pic.png", []byte("png-bytes"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUploadMissingFile(t *testing.T) {
	e := setup(t)
	_, token := e.createUser(t, "Ines", "ines@example.com", "pw", "instructor")

	rec := e.doUpload(t, token, "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing file")
}

func TestUploadRejectsUnsupportedType(t *testing.T) {
	e := setup(t)
	_, token := e.createUser(t, "Ines", "ines@example.com", "pw", "instructor")

	rec := e.doUpload(t, token, "syllabus.txt", []byte("plain text"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unsupported file type")
}

// Without a bucket configured, a valid media file gets a 503 rather than a
// silent drop.
func TestUploadUnconfigured(t *testing.T) {
	e := setup(t)
	_, token := e.createUser(t, "Ines", "ines@example.com", "pw", "instructor")

	rec := e.doUpload(t, token, "pic.png", []byte("png-bytes"))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "upload not configured")
}
