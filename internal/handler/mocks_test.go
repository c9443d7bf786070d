package handler_test

import (
	"context"
	"filelink/internal/handler"
	"filelink/internal/model"
	"filelink/internal/security"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
)

const testUserUUID = "11111111-2222-3333-4444-555555555555"

// ===== MOCKS =====

type MockShareService struct{ mock.Mock }

func (m *MockShareService) CreateShare(ctx context.Context, ownerUUID string, draft model.ShareDraft) (*model.Share, error) {
	args := m.Called(ctx, ownerUUID, draft)
	if share, ok := args.Get(0).(*model.Share); ok {
		return share, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockShareService) EditShare(ctx context.Context, id int64, ownerUUID string, draft model.ShareDraft) (*model.Share, error) {
	args := m.Called(ctx, id, ownerUUID, draft)
	if share, ok := args.Get(0).(*model.Share); ok {
		return share, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockShareService) DeleteShare(ctx context.Context, id int64, ownerUUID string) error {
	return m.Called(ctx, id, ownerUUID).Error(0)
}

func (m *MockShareService) GetShare(ctx context.Context, id int64, ownerUUID string) (*model.Share, error) {
	args := m.Called(ctx, id, ownerUUID)
	if share, ok := args.Get(0).(*model.Share); ok {
		return share, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockShareService) ListShares(ctx context.Context, ownerUUID string) ([]model.Share, error) {
	args := m.Called(ctx, ownerUUID)
	if shares, ok := args.Get(0).([]model.Share); ok {
		return shares, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockShareService) NewShareDraft(requestPath string) model.ShareDraft {
	return m.Called(requestPath).Get(0).(model.ShareDraft)
}

type MockFileService struct{ mock.Mock }

func (m *MockFileService) Browse(ctx context.Context, requestPath string) (*model.Listing, error) {
	args := m.Called(ctx, requestPath)
	if listing, ok := args.Get(0).(*model.Listing); ok {
		return listing, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockDownloadService struct{ mock.Mock }

func (m *MockDownloadService) ResolveDownload(ctx context.Context, slug string, meta model.RequestMeta) (*model.DownloadTarget, error) {
	args := m.Called(ctx, slug, meta)
	if target, ok := args.Get(0).(*model.DownloadTarget); ok {
		return target, args.Error(1)
	}
	return nil, args.Error(1)
}

// withUser : подставляет claims вместо JWTMiddleware
func withUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := &security.Claims{UserUUID: testUserUUID}
		next.ServeHTTP(w, r.WithContext(security.ContextWithClaims(r.Context(), claims)))
	})
}

func newShareRouter(svc *MockShareService, authenticated bool) http.Handler {
	h := handler.NewShareHandler(svc)
	r := chi.NewRouter()
	if authenticated {
		r.Use(withUser)
	}
	r.Get("/api/shares", h.ListShares)
	r.Get("/api/shares/new", h.NewShareDraft)
	r.Post("/api/shares", h.CreateShare)
	r.Get("/api/shares/{id}", h.GetShare)
	r.Post("/api/shares/{id}/edit", h.EditShare)
	r.Post("/api/shares/{id}/delete", h.DeleteShare)
	return r
}
