package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"courseapi/internal/auth"
	"courseapi/internal/course"
)

// TestJWTSecret signs tokens in tests.
const TestJWTSecret = "test-secret"

// TestCourse is a published course fixture.
var TestCourse = course.Course{
	ID:             "test-course-id-789",
	Slug:           "python-game-lab",
	Title:          "Python Game Lab",
	Description:    "Build arcade games in Python",
	Level:          course.LevelIntermediate,
	AgeGroup:       course.Ages10To13,
	Language:       "python",
	TotalXP:        800,
	EstimatedHours: 10,
	LessonCount:    18,
	IsPublished:    true,
	CreatedAt:      time.Now(),
	UpdatedAt:      time.Now(),
}

// TestDraftCourse is an unpublished course fixture.
var TestDraftCourse = course.Course{
	ID:          "test-draft-id-456",
	Slug:        "css-art-studio-draft",
	Title:       "CSS Art Studio (draft)",
	Level:       course.LevelBeginner,
	AgeGroup:    course.Ages7To10,
	Language:    "css",
	IsPublished: false,
	CreatedAt:   time.Now(),
	UpdatedAt:   time.Now(),
}

// GenerateTestToken generates a JWT token for testing.
func GenerateTestToken(secret, userID, role string) string {
	token, _ := auth.GenerateToken(secret, userID, role, time.Hour)
	return token
}

// NewRequest creates a new HTTP request for testing.
func NewRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	var r *http.Request
	if bodyBytes != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// NewRequestWithAuth creates a new HTTP request with a bearer token.
func NewRequestWithAuth(method, path string, body interface{}, token string) *http.Request {
	r := NewRequest(method, path, body)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	return r
}

// RecordResponse holds the decoded HTTP response for assertions.
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
}

// RecordHTTPResponse decodes the recorder body into a generic map.
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}
