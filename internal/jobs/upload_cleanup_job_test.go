package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/arrows94/3d-order-manager/internal/core/domain/model/kernel"
	"github.com/arrows94/3d-order-manager/internal/jobs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCleanupScopeStore struct {
	mock.Mock
}

func (m *MockCleanupScopeStore) ScopesOlderThan(minAge time.Duration) ([]string, error) {
	args := m.Called(minAge)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCleanupScopeStore) RemoveScope(scope string) error {
	args := m.Called(scope)
	return args.Error(0)
}

type MockCleanupOrderFinder struct {
	mock.Mock
}

func (m *MockCleanupOrderFinder) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestUploadCleanupJob_RunOnce_RemovesOrphanedScopes(t *testing.T) {
	knownID := kernel.NewUUID()
	orphanID := kernel.NewUUID()

	store := &MockCleanupScopeStore{}
	store.On("ScopesOlderThan", time.Hour).
		Return([]string{knownID.String(), orphanID.String(), "not-a-uuid"}, nil)
	store.On("RemoveScope", orphanID.String()).Return(nil)
	store.On("RemoveScope", "not-a-uuid").Return(nil)

	finder := &MockCleanupOrderFinder{}
	finder.On("Exists", mock.Anything, knownID).Return(true, nil)
	finder.On("Exists", mock.Anything, orphanID).Return(false, nil)

	job := jobs.NewUploadCleanupJob(store, finder, time.Hour, "0 * * * * *", testLogger())
	require.NoError(t, job.RunOnce(t.Context()))

	store.AssertExpectations(t)
	finder.AssertExpectations(t)
	store.AssertNotCalled(t, "RemoveScope", knownID.String())
}

func TestUploadCleanupJob_RunOnce_ListingFailurePropagates(t *testing.T) {
	store := &MockCleanupScopeStore{}
	store.On("ScopesOlderThan", time.Hour).Return(nil, errors.New("disk gone"))

	job := jobs.NewUploadCleanupJob(store, &MockCleanupOrderFinder{}, time.Hour, "0 * * * * *", testLogger())
	require.Error(t, job.RunOnce(t.Context()))
}

func TestUploadCleanupJob_RunOnce_ExistenceCheckFailureSkipsScope(t *testing.T) {
	id := kernel.NewUUID()

	store := &MockCleanupScopeStore{}
	store.On("ScopesOlderThan", time.Hour).Return([]string{id.String()}, nil)

	finder := &MockCleanupOrderFinder{}
	finder.On("Exists", mock.Anything, id).Return(false, errors.New("db down"))

	job := jobs.NewUploadCleanupJob(store, finder, time.Hour, "0 * * * * *", testLogger())
	require.NoError(t, job.RunOnce(t.Context()))

	// When existence cannot be decided the scope must be left alone.
	store.AssertNotCalled(t, "RemoveScope", id.String())
}

func TestUploadCleanupJob_RunOnce_RemoveFailureDoesNotStopSweep(t *testing.T) {
	first := kernel.NewUUID()
	second := kernel.NewUUID()

	store := &MockCleanupScopeStore{}
	store.On("ScopesOlderThan", time.Hour).
		Return([]string{first.String(), second.String()}, nil)
	store.On("RemoveScope", first.String()).Return(errors.New("permission denied"))
	store.On("RemoveScope", second.String()).Return(nil)

	finder := &MockCleanupOrderFinder{}
	finder.On("Exists", mock.Anything, first).Return(false, nil)
	finder.On("Exists", mock.Anything, second).Return(false, nil)

	job := jobs.NewUploadCleanupJob(store, finder, time.Hour, "0 * * * * *", testLogger())
	require.NoError(t, job.RunOnce(t.Context()))

	store.AssertExpectations(t)
}
