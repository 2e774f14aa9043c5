package repository

import (
	"context"
	"testing"
	"time"

	"jobconnect/internal/model"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJobRepoWithMock(t *testing.T) (JobRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewJobRepository(mock), mock
}

func TestJobRepository_Create(t *testing.T) {
	repo, mock := newJobRepoWithMock(t)

	created := time.Now()
	job := &model.Job{
		Title:       "Engineer",
		Description: "Build things",
		Company:     "Acme",
		PostedBy:    7,
		CreatedAt:   created,
	}

	mock.ExpectQuery(`INSERT INTO jobs`).
		WithArgs(job.Title, job.Description, job.Company, job.PostedBy, job.CreatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), created))

	err := repo.Create(context.Background(), job)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), job.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepository_FindAll_ResolvesPosterName(t *testing.T) {
	repo, mock := newJobRepoWithMock(t)

	created := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM jobs j JOIN users u ON j.posted_by = u.id`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "title", "description", "company", "posted_by", "created_at", "name"}).
			AddRow(int64(1), "Engineer", "Build things", "Acme", 7, created, "Acme HR").
			AddRow(int64(2), "Designer", "Draw things", "Globex", 8, created, "Globex HR"))

	jobs, err := repo.FindAll(context.Background())

	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "Engineer", jobs[0].Title)
	assert.Equal(t, "Acme HR", jobs[0].PostedByName)
	assert.Equal(t, "Globex HR", jobs[1].PostedByName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepository_FindByPoster(t *testing.T) {
	repo, mock := newJobRepoWithMock(t)

	created := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM jobs WHERE posted_by = \$1`).
		WithArgs(7).
		WillReturnRows(pgxmock.NewRows([]string{"id", "title", "description", "company", "posted_by", "created_at"}).
			AddRow(int64(1), "Engineer", "Build things", "Acme", 7, created))

	jobs, err := repo.FindByPoster(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, 7, jobs[0].PostedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepository_FindByPoster_Empty(t *testing.T) {
	repo, mock := newJobRepoWithMock(t)

	mock.ExpectQuery(`SELECT (.+) FROM jobs WHERE posted_by = \$1`).
		WithArgs(99).
		WillReturnRows(pgxmock.NewRows([]string{"id", "title", "description", "company", "posted_by", "created_at"}))

	jobs, err := repo.FindByPoster(context.Background(), 99)

	assert.NoError(t, err)
	assert.Empty(t, jobs)
	assert.NoError(t, mock.ExpectationsWereMet())
}
