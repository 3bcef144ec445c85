package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"resume-match/internal/delivery/http/middleware"
	"resume-match/internal/domain/matching"
	"resume-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubMatchUsecase struct {
	results []matching.MatchResult
	err     error

	gotResumeID uuid.UUID
	gotTopN     int
}

func (s *stubMatchUsecase) TopMatches(_ context.Context, resumeID uuid.UUID, topN int) ([]matching.MatchResult, error) {
	s.gotResumeID = resumeID
	s.gotTopN = topN
	return s.results, s.err
}

func newTestApp(register func(r fiber.Router)) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(zap.NewNop()).Middleware())
	register(app)
	return app
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, body io.Reader) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(body).Decode(&env))
	return env
}

func TestMatchHandler_GetMatches_OK(t *testing.T) {
	jobID := uuid.New()
	stub := &stubMatchUsecase{results: []matching.MatchResult{{
		JobID:       jobID,
		Title:       "Data Engineer",
		Score:       0.82,
		Explanation: "Score: 0.82 | Common: python",
	}}}

	app := newTestApp(func(r fiber.Router) {
		NewMatchHandler(stub).RegisterRoutes(r.Group("/api/v1/resumes"))
	})

	resumeID := uuid.New()
	req := httptest.NewRequest("GET", "/api/v1/resumes/"+resumeID.String()+"/matches?top_n=3", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, resumeID, stub.gotResumeID)
	assert.Equal(t, 3, stub.gotTopN)

	env := decodeEnvelope(t, resp.Body)
	var data struct {
		ResumeID uuid.UUID `json:"resume_id"`
		Matches  []struct {
			JobID       uuid.UUID `json:"job_id"`
			Title       string    `json:"title"`
			Score       float64   `json:"score"`
			Explanation string    `json:"explanation"`
		} `json:"matches"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Matches, 1)
	assert.Equal(t, resumeID, data.ResumeID)
	assert.Equal(t, jobID, data.Matches[0].JobID)
	assert.Equal(t, "Data Engineer", data.Matches[0].Title)
	assert.InDelta(t, 0.82, data.Matches[0].Score, 1e-9)
}

func TestMatchHandler_GetMatches_InvalidResumeID(t *testing.T) {
	app := newTestApp(func(r fiber.Router) {
		NewMatchHandler(&stubMatchUsecase{}).RegisterRoutes(r.Group("/api/v1/resumes"))
	})

	req := httptest.NewRequest("GET", "/api/v1/resumes/not-a-uuid/matches", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestMatchHandler_GetMatches_InvalidTopN(t *testing.T) {
	app := newTestApp(func(r fiber.Router) {
		NewMatchHandler(&stubMatchUsecase{}).RegisterRoutes(r.Group("/api/v1/resumes"))
	})

	req := httptest.NewRequest("GET", "/api/v1/resumes/"+uuid.NewString()+"/matches?top_n=abc", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestMatchHandler_GetMatches_ResumeNotFound(t *testing.T) {
	app := newTestApp(func(r fiber.Router) {
		NewMatchHandler(&stubMatchUsecase{err: usecase.ErrResumeNotFound}).RegisterRoutes(r.Group("/api/v1/resumes"))
	})

	req := httptest.NewRequest("GET", "/api/v1/resumes/"+uuid.NewString()+"/matches", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestMatchHandler_GetMatches_EmptyResult(t *testing.T) {
	app := newTestApp(func(r fiber.Router) {
		NewMatchHandler(&stubMatchUsecase{results: nil}).RegisterRoutes(r.Group("/api/v1/resumes"))
	})

	req := httptest.NewRequest("GET", "/api/v1/resumes/"+uuid.NewString()+"/matches", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp.Body)
	var data struct {
		Matches []any `json:"matches"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Empty(t, data.Matches)
}
