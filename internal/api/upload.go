package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jonathan/jobboard-client/internal/schemas"
)

// UploadResult is the backend's answer to a successful file upload.
type UploadResult struct {
	FileID    string `json:"file_id"`
	FileName  string `json:"file_name,omitempty"`
	SizeBytes int64  `json:"size_bytes,omitempty"`
}

// upload performs one multipart round trip: the file lands in the "file"
// field, extra string fields follow. Content-Type is left to the multipart
// writer so the boundary is set correctly. Error mapping matches do; response
// validation is skipped when schema is empty.
func (c *Client) upload(ctx context.Context, path, fileName string, file io.Reader, fields map[string]string, schemaName, schema string) (*UploadResult, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to create multipart file field: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to read upload file: %w", err)
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, fmt.Errorf("failed to write multipart field %s: %w", key, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	endpoint := c.baseURL + apiPrefix + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token := c.session.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.networkError(http.MethodPost, endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.networkError(http.MethodPost, endpoint, err)
	}

	if c.env == EnvDevelopment {
		c.log.WithFields(logrus.Fields{
			"method":   http.MethodPost,
			"path":     apiPrefix + path,
			"status":   resp.StatusCode,
			"file":     fileName,
			"duration": time.Since(start).String(),
		}).Debug("api upload")
	}

	if resp.StatusCode == http.StatusNoContent {
		return &UploadResult{}, nil
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		httpErr := &HTTPError{StatusCode: resp.StatusCode, Raw: string(respBody)}
		var parsed any
		if json.Unmarshal(respBody, &parsed) == nil {
			httpErr.Body = parsed
		}
		return nil, httpErr
	}

	if schema != "" {
		if err := schemas.Validate(schemaName, schema, string(respBody)); err != nil {
			if ve, ok := err.(*schemas.ValidationError); ok {
				return nil, newResponseValidationError(schemaName, ve)
			}
			return nil, err
		}
	}

	var result UploadResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, &ResponseValidationError{
			Schema: schemaName,
			Issues: []FieldIssue{{Field: "(root)", Message: err.Error()}},
		}
	}
	return &result, nil
}
