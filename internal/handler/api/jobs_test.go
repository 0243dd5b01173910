//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"leafdeals/internal/handler/api"
	"leafdeals/internal/handler/middleware"
	"leafdeals/internal/usecase/commands"
	commandsmock "leafdeals/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testTriggerSecret = "test-trigger-secret"

type JobsHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockCtrl   *gomock.Controller
	mockZones  *commandsmock.MockZoneCommands
	mockIngest *commandsmock.MockIngestCommands
}

func (s *JobsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockZones = commandsmock.NewMockZoneCommands(s.mockCtrl)
	s.mockIngest = commandsmock.NewMockIngestCommands(s.mockCtrl)
	handler := api.NewJobsHandler(s.mockZones, s.mockIngest)

	jobAuth := middleware.NewJobAuthMiddleware(testTriggerSecret)
	jobs := s.router.Group("/api/jobs")
	jobs.Use(jobAuth.RequireTriggerSecret())
	jobs.POST("/refresh-zones", handler.RefreshZones)
	jobs.POST("/ingest", handler.Ingest)
}

func (s *JobsHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestJobsHandlerSuite(t *testing.T) {
	suite.Run(t, new(JobsHandlerTestSuite))
}

func (s *JobsHandlerTestSuite) perform(path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *JobsHandlerTestSuite) TestMissingCredentialRejected() {
	rec := s.perform("/api/jobs/refresh-zones", "")
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *JobsHandlerTestSuite) TestWrongCredentialRejected() {
	rec := s.perform("/api/jobs/refresh-zones", "Bearer nope")
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *JobsHandlerTestSuite) TestRefreshZonesReturnsStats() {
	s.mockZones.EXPECT().RefreshZones(gomock.Any(), 0).
		Return(commands.RefreshStats{Claimed: 3, Processed: 2, Failed: 1}, nil)

	rec := s.perform("/api/jobs/refresh-zones", "Bearer "+testTriggerSecret)

	s.Equal(http.StatusOK, rec.Code)
	var stats commands.RefreshStats
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &stats))
	s.Equal(commands.RefreshStats{Claimed: 3, Processed: 2, Failed: 1}, stats)
}

func (s *JobsHandlerTestSuite) TestRefreshZonesBatchSizeParam() {
	s.mockZones.EXPECT().RefreshZones(gomock.Any(), 7).
		Return(commands.RefreshStats{}, nil)

	rec := s.perform("/api/jobs/refresh-zones?batch_size=7", "Bearer "+testTriggerSecret)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *JobsHandlerTestSuite) TestRefreshZonesInvalidBatchSize() {
	rec := s.perform("/api/jobs/refresh-zones?batch_size=abc", "Bearer "+testTriggerSecret)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *JobsHandlerTestSuite) TestIngestReturnsStats() {
	s.mockIngest.EXPECT().RunIngestion(gomock.Any()).
		Return(commands.IngestStats{SourcesSeen: 12, Processed: 9, Failed: 2, Skipped: 1, DealsInserted: 31}, nil)

	rec := s.perform("/api/jobs/ingest", "Bearer "+testTriggerSecret)

	s.Equal(http.StatusOK, rec.Code)
	var stats commands.IngestStats
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &stats))
	s.Equal(31, stats.DealsInserted)
}

func (s *JobsHandlerTestSuite) TestIngestErrorIs500() {
	s.mockIngest.EXPECT().RunIngestion(gomock.Any()).
		Return(commands.IngestStats{}, commands.ErrIngestCandidatesFailed)

	rec := s.perform("/api/jobs/ingest", "Bearer "+testTriggerSecret)
	s.Equal(http.StatusInternalServerError, rec.Code)
}
