package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jobconnect/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newJobRouter(svc *mockJobService, userID int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewJobHandler(svc)
	router := gin.New()
	h.RegisterJobRoutes(router.Group("/api"), fakeAuthMW(userID))
	return router
}

func TestJobHandler_ListJobs_Public(t *testing.T) {
	svc := new(mockJobService)
	router := newJobRouter(svc, 0)

	svc.On("ListJobs", mock.Anything).Return([]model.JobListing{
		{Job: model.Job{ID: 1, Title: "Engineer", Company: "Acme"}, PostedByName: "Acme HR"},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/jobs", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"postedByName":"Acme HR"`)
}

func TestJobHandler_ListJobs_EmptyIsJSONArray(t *testing.T) {
	svc := new(mockJobService)
	router := newJobRouter(svc, 0)

	svc.On("ListJobs", mock.Anything).Return(nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/jobs", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestJobHandler_CreateJob_OwnerFromSession(t *testing.T) {
	svc := new(mockJobService)
	router := newJobRouter(svc, 7)

	svc.On("CreateJob", mock.Anything, 7, model.CreateJobRequest{
		Title:       "Engineer",
		Description: "Build things",
	}).Return(&model.Job{ID: 1, Title: "Engineer", Description: "Build things", Company: "Acme", PostedBy: 7}, nil)

	// The postedBy in the body must be ignored; the session decides ownership
	body := `{"title":"Engineer","description":"Build things","postedBy":999}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/employer/create-job", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"postedBy":7`)
	svc.AssertExpectations(t)
}

func TestJobHandler_CreateJob_MissingTitle(t *testing.T) {
	svc := new(mockJobService)
	router := newJobRouter(svc, 7)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/employer/create-job", strings.NewReader(`{"description":"no title"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "CreateJob", mock.Anything, mock.Anything, mock.Anything)
}

func TestJobHandler_MyJobPostings(t *testing.T) {
	svc := new(mockJobService)
	router := newJobRouter(svc, 7)

	svc.On("ListJobsByPoster", mock.Anything, 7).Return([]model.Job{
		{ID: 1, Title: "Engineer", PostedBy: 7},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/employer/job-postings", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"postedBy":7`)
	svc.AssertExpectations(t)
}
