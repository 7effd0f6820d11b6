package delete

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"garment-ledger/internal/storage"
)

type MockEntryDeleter struct {
	mock.Mock
}

func (m *MockEntryDeleter) GetAllEntries(ctx context.Context) ([]storage.Entry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.Entry), args.Error(1)
}

func (m *MockEntryDeleter) DeleteEntry(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEntryDeleter) DeleteEntriesByIDs(ctx context.Context, ids []int64) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

func (m *MockEntryDeleter) DeleteAllEntries(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Deleting a worker removes that worker's entries inside the selected week
// and nothing else: not other workers, not the same worker in other weeks.
func TestDeleteWorkerEntries_CascadeScopedToWorkerAndWeek(t *testing.T) {
	now := time.Now()
	lastMonth := now.AddDate(0, 0, -28)

	deleter := new(MockEntryDeleter)
	deleter.On("GetAllEntries", mock.Anything).Return([]storage.Entry{
		{ID: 1, WorkerName: "Ravi", CreatedAt: now},
		{ID: 2, WorkerName: "Sita", CreatedAt: now},
		{ID: 3, WorkerName: "Ravi", CreatedAt: now},
		{ID: 4, WorkerName: "Ravi", CreatedAt: lastMonth},
	}, nil)
	deleter.On("DeleteEntriesByIDs", mock.Anything, []int64{1, 3}).Return(nil)

	router := chi.NewRouter()
	router.Delete("/api/entries/worker/{name}", DeleteWorkerEntries(testLogger(), deleter))

	req := httptest.NewRequest(http.MethodDelete, "/api/entries/worker/Ravi", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"deleted":2`)
	deleter.AssertExpectations(t)
}

func TestDeleteWorkerEntries_InvalidWeek(t *testing.T) {
	deleter := new(MockEntryDeleter)
	deleter.On("GetAllEntries", mock.Anything).Return([]storage.Entry{}, nil)

	router := chi.NewRouter()
	router.Delete("/api/entries/worker/{name}", DeleteWorkerEntries(testLogger(), deleter))

	// Empty record set: only the current week (index 0) exists.
	req := httptest.NewRequest(http.MethodDelete, "/api/entries/worker/Ravi?week=3", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	deleter.AssertNotCalled(t, "DeleteEntriesByIDs", mock.Anything, mock.Anything)
}

func TestDeleteEntry_InvalidID(t *testing.T) {
	deleter := new(MockEntryDeleter)

	router := chi.NewRouter()
	router.Delete("/api/entries/{id}", DeleteEntryOperation(testLogger(), deleter))

	req := httptest.NewRequest(http.MethodDelete, "/api/entries/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	deleter.AssertNotCalled(t, "DeleteEntry", mock.Anything, mock.Anything)
}

func TestDeleteAllEntries(t *testing.T) {
	deleter := new(MockEntryDeleter)
	deleter.On("DeleteAllEntries", mock.Anything).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/entries", nil)
	rec := httptest.NewRecorder()

	DeleteAllEntriesOperation(testLogger(), deleter)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	deleter.AssertExpectations(t)
}
