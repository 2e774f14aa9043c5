package handler

import (
	"context"
	"mime/multipart"

	"jobconnect/internal/middleware"
	"jobconnect/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, *model.Session, error) {
	args := m.Called(ctx, req)
	user, _ := args.Get(0).(*model.User)
	session, _ := args.Get(1).(*model.Session)
	return user, session, args.Error(2)
}

func (m *mockAuthService) Login(ctx context.Context, req model.LoginRequest) (*model.User, *model.Session, error) {
	args := m.Called(ctx, req)
	user, _ := args.Get(0).(*model.User)
	session, _ := args.Get(1).(*model.Session)
	return user, session, args.Error(2)
}

func (m *mockAuthService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

type mockJobService struct {
	mock.Mock
}

func (m *mockJobService) CreateJob(ctx context.Context, userID int, req model.CreateJobRequest) (*model.Job, error) {
	args := m.Called(ctx, userID, req)
	job, _ := args.Get(0).(*model.Job)
	return job, args.Error(1)
}

func (m *mockJobService) ListJobs(ctx context.Context) ([]model.JobListing, error) {
	args := m.Called(ctx)
	jobs, _ := args.Get(0).([]model.JobListing)
	return jobs, args.Error(1)
}

func (m *mockJobService) ListJobsByPoster(ctx context.Context, userID int) ([]model.Job, error) {
	args := m.Called(ctx, userID)
	jobs, _ := args.Get(0).([]model.Job)
	return jobs, args.Error(1)
}

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) GetProfile(ctx context.Context, userID int) (*model.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *mockUserService) UploadResume(ctx context.Context, userID int, fileHeader *multipart.FileHeader) (string, error) {
	args := m.Called(ctx, userID, fileHeader)
	return args.String(0), args.Error(1)
}

// fakeAuthMW stands in for the session middleware, injecting a fixed user id
func fakeAuthMW(userID int) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.AuthUserKey, userID)
		c.Next()
	}
}
