package get

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"garment-ledger/internal/service/payroll"
	"garment-ledger/internal/storage"
)

type MockEntriesProvider struct {
	mock.Mock
}

func (m *MockEntriesProvider) GetAllEntries(ctx context.Context) ([]storage.Entry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.Entry), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGetIOReport_NumericOrder(t *testing.T) {
	provider := new(MockEntriesProvider)
	provider.On("GetAllEntries", mock.Anything).Return([]storage.Entry{
		{WorkerName: "Ravi", IONumber: "10", WorkType: "stitching", Pieces: 4},
		{WorkerName: "Sita", IONumber: "2", WorkType: "cutting", Pieces: 7},
		{WorkerName: "Gita", IONumber: "abc", WorkType: "packing", Pieces: 1},
		{WorkerName: "Ravi", IONumber: "1", WorkType: "ironing", Pieces: 2},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/report/io", nil)
	rec := httptest.NewRecorder()

	GetIOReport(testLogger(), provider)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var groups []payroll.IOSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &groups))
	require.Len(t, groups, 4)
	assert.Equal(t, "abc", groups[0].IONumber)
	assert.Equal(t, "1", groups[1].IONumber)
	assert.Equal(t, "2", groups[2].IONumber)
	assert.Equal(t, "10", groups[3].IONumber)
}

func TestGetIOReport_SearchFilter(t *testing.T) {
	provider := new(MockEntriesProvider)
	provider.On("GetAllEntries", mock.Anything).Return([]storage.Entry{
		{WorkerName: "Ravi", IONumber: "104", WorkType: "stitching", Pieces: 4},
		{WorkerName: "Sita", IONumber: "205", WorkType: "cutting", Pieces: 7},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/report/io?q=10", nil)
	rec := httptest.NewRecorder()

	GetIOReport(testLogger(), provider)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var groups []payroll.IOSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &groups))
	require.Len(t, groups, 1)
	assert.Equal(t, "104", groups[0].IONumber)
}

func TestGetIOReport_StoreFailure(t *testing.T) {
	provider := new(MockEntriesProvider)
	provider.On("GetAllEntries", mock.Anything).Return(nil, assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/api/report/io", nil)
	rec := httptest.NewRecorder()

	GetIOReport(testLogger(), provider)(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
