package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jonathan/jobboard-client/internal/schemas"
	"github.com/jonathan/jobboard-client/internal/session"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// apiPrefix is prepended to every resource path.
const apiPrefix = "/api"

// Environment selects diagnostic verbosity. Development mode logs request
// detail and returns verbose network-failure messages; production mode keeps
// messages generic and never logs request headers or bodies.
type Environment string

// Supported environments.
const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// validatable is implemented by request payloads that declare a shape.
type validatable interface {
	Validate() error
}

// Options configures a Client.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	Env        Environment
	Session    session.Store
	Logger     *logrus.Logger
	HTTPClient *http.Client
}

// Client is the typed API client. Per-resource catalogs hang off it.
type Client struct {
	baseURL    string
	env        Environment
	session    session.Store
	log        *logrus.Logger
	httpClient *http.Client

	Jobs            *JobsService
	Applications    *ApplicationsService
	JobSeekers      *JobSeekersService
	Employers       *EmployersService
	Interviews      *InterviewsService
	Recommendations *RecommendationsService
	Auth            *AuthService
	Stats           *StatsService
}

// New creates a Client. A nil session store behaves as logged-out.
func New(opts *Options) *Client {
	if opts == nil {
		opts = &Options{}
	}
	baseURL := strings.TrimSuffix(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}
	env := opts.Env
	if env == "" {
		env = EnvProduction
	}
	sess := opts.Session
	if sess == nil {
		sess = session.NewMemStore()
	}
	log := opts.Logger
	if log == nil {
		log = logrus.New()
		if env == EnvDevelopment {
			log.SetLevel(logrus.DebugLevel)
		} else {
			log.SetLevel(logrus.WarnLevel)
		}
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	c := &Client{
		baseURL:    baseURL,
		env:        env,
		session:    sess,
		log:        log,
		httpClient: httpClient,
	}
	c.Jobs = &JobsService{client: c}
	c.Applications = &ApplicationsService{client: c}
	c.JobSeekers = &JobSeekersService{client: c}
	c.Employers = &EmployersService{client: c}
	c.Interviews = &InterviewsService{client: c}
	c.Recommendations = &RecommendationsService{client: c}
	c.Auth = &AuthService{client: c}
	c.Stats = &StatsService{client: c}
	return c
}

// Session exposes the session store for callers that manage login state.
func (c *Client) Session() session.Store {
	return c.session
}

// do performs one validated HTTP round trip.
//
// If body implements Validate, a failure short-circuits before any network
// I/O. A bearer token is attached when the session holds one. On success the
// response body is validated against schema (skipped when schema is empty)
// and decoded into out (skipped when out is nil). A 204 returns immediately
// with no body parse.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, schemaName, schema string, out any) error {
	if v, ok := body.(validatable); ok {
		if err := v.Validate(); err != nil {
			return newRequestValidationError(err)
		}
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	endpoint := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.session.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.networkError(method, endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.networkError(method, endpoint, err)
	}

	// Debug logging never includes the Authorization header or request body.
	if c.env == EnvDevelopment {
		c.log.WithFields(logrus.Fields{
			"method":     method,
			"path":       apiPrefix + path,
			"status":     resp.StatusCode,
			"duration":   time.Since(start).String(),
			"request_id": requestID,
		}).Debug("api request")
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		httpErr := &HTTPError{StatusCode: resp.StatusCode, Raw: string(respBody)}
		var parsed any
		if json.Unmarshal(respBody, &parsed) == nil {
			httpErr.Body = parsed
		}
		return httpErr
	}

	if schema != "" {
		if err := schemas.Validate(schemaName, schema, string(respBody)); err != nil {
			if ve, ok := err.(*schemas.ValidationError); ok {
				return newResponseValidationError(schemaName, ve)
			}
			return err
		}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return &ResponseValidationError{
				Schema: schemaName,
				Issues: []FieldIssue{{Field: "(root)", Message: err.Error()}},
			}
		}
	}
	return nil
}

// networkError builds a transport failure with environment-sensitive detail.
func (c *Client) networkError(method, endpoint string, cause error) *NetworkError {
	if c.env == EnvDevelopment {
		return &NetworkError{
			Message: fmt.Sprintf("%s %s failed: %v — is the backend running at %s?", method, endpoint, cause, c.baseURL),
			Cause:   cause,
		}
	}
	return &NetworkError{
		Message: "Unable to reach the server. Please check your connection and try again.",
		Cause:   cause,
	}
}
