package service_test

import (
	"filelink/config"
	"filelink/internal/model"
	"filelink/internal/repository"
	"filelink/internal/service"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testOwner = "owner-uuid"

type invalidationFixture struct {
	repo     *MockShareRepository
	logs     *MockDownloadLogRepository
	cache    *repository.CacheRepository
	server   *miniredis.Miniredis
	shares   *service.ShareService
	download *service.DownloadService
}

func newInvalidationFixture(t *testing.T) *invalidationFixture {
	t.Helper()

	resolver := newTestResolver(t)
	require.NoError(t, os.WriteFile(filepath.Join(resolver.Root(), "f.txt"), []byte("data"), 0o644))

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	f := &invalidationFixture{
		repo:   new(MockShareRepository),
		logs:   new(MockDownloadLogRepository),
		cache:  repository.NewCacheRepository(&config.RedisClient{Client: client}, 5*time.Minute),
		server: server,
	}
	f.shares = service.NewShareService(f.repo, f.cache, resolver)
	f.download = service.NewDownloadService(f.repo, f.logs, f.cache, resolver)
	f.logs.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	return f
}

func enabledShare() *model.Share {
	return &model.Share{ID: 1, Slug: "s", Name: "f.txt", DownloadEnabled: true, OwnerUUID: testOwner}
}

func TestResolveDownload_DeleteDuringLookupDoesNotRefillCache(t *testing.T) {
	f := newInvalidationFixture(t)
	ctx := testContext()

	tx := expectTx(f.repo)
	f.repo.On("Delete", mock.Anything, tx, int64(1), testOwner).Return("s", nil).Once()
	f.repo.On("GetBySlug", ctx, mock.Anything, "s").
		Run(func(mock.Arguments) {
			require.NoError(t, f.shares.DeleteShare(ctx, 1, testOwner))
		}).
		Return(enabledShare(), nil).Once()
	f.repo.On("GetBySlug", ctx, mock.Anything, "s").Return(nil, model.ErrNotFound).Once()

	_, err := f.download.ResolveDownload(ctx, "s", testMeta)
	require.NoError(t, err)
	assert.False(t, f.server.Exists("share:s"))

	_, err = f.download.ResolveDownload(ctx, "s", testMeta)

	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.True(t, tx.committed)
	f.repo.AssertNumberOfCalls(t, "GetBySlug", 2)
}

func TestResolveDownload_DisableDuringLookupDoesNotRefillCache(t *testing.T) {
	f := newInvalidationFixture(t)
	ctx := testContext()

	disabled := enabledShare()
	disabled.DownloadEnabled = false

	tx := expectTx(f.repo)
	f.repo.On("GetByID", mock.Anything, tx, int64(1), testOwner).Return(enabledShare(), nil).Once()
	f.repo.On("Update", mock.Anything, tx, mock.Anything).Return(nil).Once()
	f.repo.On("GetBySlug", ctx, mock.Anything, "s").
		Run(func(mock.Arguments) {
			draft := model.ShareDraft{Name: "f.txt", DownloadEnabled: false, ForceDownload: true}
			_, err := f.shares.EditShare(ctx, 1, testOwner, draft)
			require.NoError(t, err)
		}).
		Return(enabledShare(), nil).Once()
	f.repo.On("GetBySlug", ctx, mock.Anything, "s").Return(disabled, nil).Once()

	_, err := f.download.ResolveDownload(ctx, "s", testMeta)
	require.NoError(t, err)

	_, err = f.download.ResolveDownload(ctx, "s", testMeta)

	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.False(t, f.server.Exists("share:s"))
}

func TestDeleteShare_SlugImmediatelyUnresolvable(t *testing.T) {
	f := newInvalidationFixture(t)
	ctx := testContext()

	require.NoError(t, f.cache.SetShare(ctx, enabledShare()))
	target, err := f.download.ResolveDownload(ctx, "s", testMeta)
	require.NoError(t, err)
	assert.Equal(t, "f.txt", target.Filename)

	tx := expectTx(f.repo)
	f.repo.On("Delete", mock.Anything, tx, int64(1), testOwner).Return("s", nil).Once()
	f.repo.On("GetBySlug", ctx, mock.Anything, "s").Return(nil, model.ErrNotFound).Once()

	require.NoError(t, f.shares.DeleteShare(ctx, 1, testOwner))
	_, err = f.download.ResolveDownload(ctx, "s", testMeta)

	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.False(t, f.server.Exists("share:s"))
}
