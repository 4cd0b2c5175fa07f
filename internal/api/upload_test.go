package api

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadResume_MultipartRequest(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/job-seeker-profiles/S1/resume", r.URL.Path)
		require.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data; boundary="),
			"content type must carry the multipart boundary")

		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer func() { _ = file.Close() }()

		assert.Equal(t, "resume.pdf", header.Filename)
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.4 fake", string(content))

		_, _ = w.Write([]byte(`{"file_id": "F1", "file_name": "resume.pdf", "size_bytes": 13}`))
	}))

	result, err := client.JobSeekers.UploadResume(context.Background(), "S1", "resume.pdf", strings.NewReader("%PDF-1.4 fake"))
	require.NoError(t, err)
	assert.Equal(t, "F1", result.FileID)
	assert.EqualValues(t, 13, result.SizeBytes)
}

func TestUpload_HTTPErrorMapping(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		_, _ = w.Write([]byte(`{"detail":"file too large"}`))
	}))

	_, err := client.JobSeekers.UploadResume(context.Background(), "S1", "resume.pdf", strings.NewReader("x"))
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusRequestEntityTooLarge))
}

func TestUpload_ResponseSchemaMismatch(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"unexpected": true}`))
	}))

	_, err := client.JobSeekers.UploadResume(context.Background(), "S1", "resume.pdf", strings.NewReader("x"))
	require.Error(t, err)

	var respErr *ResponseValidationError
	assert.ErrorAs(t, err, &respErr)
}
