package service_test

import (
	"context"
	"database/sql"
	"filelink/config"
	"filelink/internal/filesystem"
	"filelink/internal/model"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ===== MOCKS =====

type MockShareRepository struct{ mock.Mock }

func (m *MockShareRepository) Create(ctx context.Context, exec sqlx.ExtContext, share *model.Share) error {
	return m.Called(ctx, exec, share).Error(0)
}

func (m *MockShareRepository) GetByID(ctx context.Context, exec sqlx.ExtContext, id int64, ownerUUID string) (*model.Share, error) {
	args := m.Called(ctx, exec, id, ownerUUID)
	if share, ok := args.Get(0).(*model.Share); ok {
		return share, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockShareRepository) GetBySlug(ctx context.Context, exec sqlx.ExtContext, slug string) (*model.Share, error) {
	args := m.Called(ctx, exec, slug)
	if share, ok := args.Get(0).(*model.Share); ok {
		return share, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockShareRepository) ListByOwner(ctx context.Context, exec sqlx.ExtContext, ownerUUID string) ([]model.Share, error) {
	args := m.Called(ctx, exec, ownerUUID)
	if shares, ok := args.Get(0).([]model.Share); ok {
		return shares, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockShareRepository) ListByDirectory(ctx context.Context, exec sqlx.ExtContext, directory string) ([]model.Share, error) {
	args := m.Called(ctx, exec, directory)
	if shares, ok := args.Get(0).([]model.Share); ok {
		return shares, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockShareRepository) Update(ctx context.Context, exec sqlx.ExtContext, share *model.Share) error {
	return m.Called(ctx, exec, share).Error(0)
}

func (m *MockShareRepository) Delete(ctx context.Context, exec sqlx.ExtContext, id int64, ownerUUID string) (string, error) {
	args := m.Called(ctx, exec, id, ownerUUID)
	return args.String(0), args.Error(1)
}

func (m *MockShareRepository) BeginTX(ctx context.Context) (sqlx.ExtContext, func() error, func() error, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, nil, nil, args.Error(3)
	}
	return args.Get(0).(sqlx.ExtContext), args.Get(1).(func() error), args.Get(2).(func() error), args.Error(3)
}

type MockCacheRepository struct{ mock.Mock }

func (m *MockCacheRepository) SetShare(ctx context.Context, share *model.Share) error {
	return m.Called(ctx, share).Error(0)
}

func (m *MockCacheRepository) GetShare(ctx context.Context, slug string) (*model.Share, error) {
	args := m.Called(ctx, slug)
	if share, ok := args.Get(0).(*model.Share); ok {
		return share, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCacheRepository) DeleteShare(ctx context.Context, slug string) error {
	return m.Called(ctx, slug).Error(0)
}

type MockDownloadLogRepository struct{ mock.Mock }

func (m *MockDownloadLogRepository) Create(ctx context.Context, exec sqlx.ExtContext, downloadLog *model.DownloadLog) error {
	return m.Called(ctx, exec, downloadLog).Error(0)
}

type fakeTx struct {
	committed  bool
	rolledBack bool
}

func (f *fakeTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, nil
}
func (f *fakeTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, nil
}
func (f *fakeTx) QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error) {
	return nil, nil
}
func (f *fakeTx) QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row {
	return &sqlx.Row{}
}
func (f *fakeTx) BindNamed(query string, arg interface{}) (string, []interface{}, error) {
	return "", nil, nil
}
func (f *fakeTx) DriverName() string         { return "fake" }
func (f *fakeTx) Rebind(query string) string { return query }
func (f *fakeTx) Commit() error              { f.committed = true; return nil }
func (f *fakeTx) Rollback() error {
	if f.committed == false {
		f.rolledBack = true
	}
	return nil
}

// expectTx : BeginTX возвращает fakeTx, чтобы проверить коммит и откат
func expectTx(repo *MockShareRepository) *fakeTx {
	tx := &fakeTx{}
	repo.On("BeginTX", mock.Anything).Return(tx, tx.Rollback, tx.Commit, nil)
	return tx
}

func testContext() context.Context {
	return context.WithValue(context.Background(), config.DBContextKey, &config.Database{})
}

func newTestResolver(t *testing.T) *filesystem.PathResolver {
	t.Helper()
	resolver, err := filesystem.NewPathResolver(t.TempDir())
	require.NoError(t, err)
	return resolver
}
