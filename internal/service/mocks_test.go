package service

import (
	"context"

	"jobconnect/internal/model"

	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) FindByEmailAndType(ctx context.Context, email, userType string) (*model.User, error) {
	args := m.Called(ctx, email, userType)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id int) (*model.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) UpdateResumePath(ctx context.Context, id int, resumePath string) error {
	args := m.Called(ctx, id, resumePath)
	return args.Error(0)
}

type mockJobRepo struct {
	mock.Mock
}

func (m *mockJobRepo) Create(ctx context.Context, job *model.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *mockJobRepo) FindAll(ctx context.Context) ([]model.JobListing, error) {
	args := m.Called(ctx)
	jobs, _ := args.Get(0).([]model.JobListing)
	return jobs, args.Error(1)
}

func (m *mockJobRepo) FindByPoster(ctx context.Context, userID int) ([]model.Job, error) {
	args := m.Called(ctx, userID)
	jobs, _ := args.Get(0).([]model.Job)
	return jobs, args.Error(1)
}

type mockSessionRepo struct {
	mock.Mock
}

func (m *mockSessionRepo) Create(ctx context.Context, session *model.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *mockSessionRepo) FindByToken(ctx context.Context, token string) (*model.Session, error) {
	args := m.Called(ctx, token)
	session, _ := args.Get(0).(*model.Session)
	return session, args.Error(1)
}

func (m *mockSessionRepo) Delete(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}
