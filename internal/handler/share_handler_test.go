package handler_test

import (
	"encoding/json"
	"errors"
	"filelink/internal/model"
	requestresponse "filelink/internal/model/requestresponse"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testShare() *model.Share {
	created := time.Date(2025, 8, 23, 12, 0, 0, 0, time.UTC)
	return &model.Share{
		ID:              42,
		Slug:            "aZ3kP9qL0mX7tRw",
		Directory:       "photos",
		Name:            "cat.jpg",
		DownloadEnabled: true,
		ForceDownload:   true,
		OwnerUUID:       testUserUUID,
		CreatedAt:       created,
		UpdatedAt:       created,
	}
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCreateShare_Success(t *testing.T) {
	svc := new(MockShareService)
	router := newShareRouter(svc, true)

	expectedDraft := model.ShareDraft{Directory: "photos", Name: "cat.jpg", DownloadEnabled: true, ForceDownload: false}
	svc.On("CreateShare", mock.Anything, testUserUUID, expectedDraft).Return(testShare(), nil).Once()

	rec := serve(router, http.MethodPost, "/api/shares", `{"directory":"photos","name":"cat.jpg","force_download":false}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp requestresponse.GetShareResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "/download/aZ3kP9qL0mX7tRw", resp.Data.Share.DownloadURL)
	assert.Equal(t, int64(42), resp.Data.Share.ID)
	svc.AssertExpectations(t)
}

func TestCreateShare_InvalidJSON(t *testing.T) {
	svc := new(MockShareService)
	router := newShareRouter(svc, true)

	rec := serve(router, http.MethodPost, "/api/shares", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "CreateShare", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateShare_Unauthorized(t *testing.T) {
	svc := new(MockShareService)
	router := newShareRouter(svc, false)

	rec := serve(router, http.MethodPost, "/api/shares", `{"name":"cat.jpg"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateShare_ValidationAndPathTaken(t *testing.T) {
	verr := model.NewValidationError()
	verr.Add("name", "обязательное поле")

	taken := model.NewValidationError()
	taken.Add("name", "уже существует")

	tests := []struct {
		name  string
		err   error
		field string
	}{
		{"validation", fmt.Errorf("[ShareService] %w", verr), "name"},
		{"path taken", fmt.Errorf("%w: %w", model.ErrPathTaken, taken), "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockShareService)
			router := newShareRouter(svc, true)
			svc.On("CreateShare", mock.Anything, testUserUUID, mock.Anything).Return(nil, tt.err).Once()

			rec := serve(router, http.MethodPost, "/api/shares", `{"name":"x"}`)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			var resp requestresponse.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Contains(t, resp.Fields, tt.field)
		})
	}
}

func TestCreateShare_InternalError(t *testing.T) {
	svc := new(MockShareService)
	router := newShareRouter(svc, true)
	svc.On("CreateShare", mock.Anything, testUserUUID, mock.Anything).Return(nil, model.ErrSlugCollisionExhausted).Once()

	rec := serve(router, http.MethodPost, "/api/shares", `{"name":"x"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetShare(t *testing.T) {
	svc := new(MockShareService)
	router := newShareRouter(svc, true)
	svc.On("GetShare", mock.Anything, int64(42), testUserUUID).Return(testShare(), nil).Once()
	svc.On("GetShare", mock.Anything, int64(7), testUserUUID).Return(nil, model.ErrNotFound).Once()

	ok := serve(router, http.MethodGet, "/api/shares/42", "")
	missing := serve(router, http.MethodGet, "/api/shares/7", "")
	invalid := serve(router, http.MethodGet, "/api/shares/abc", "")

	assert.Equal(t, http.StatusOK, ok.Code)
	assert.Equal(t, http.StatusNotFound, missing.Code)
	assert.Equal(t, http.StatusBadRequest, invalid.Code)
}

func TestListShares(t *testing.T) {
	svc := new(MockShareService)
	router := newShareRouter(svc, true)
	svc.On("ListShares", mock.Anything, testUserUUID).Return([]model.Share{*testShare()}, nil).Once()

	rec := serve(router, http.MethodGet, "/api/shares", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp requestresponse.ListSharesResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "cat.jpg", resp.Data.Shares[0].Name)
}

func TestNewShareDraft(t *testing.T) {
	svc := new(MockShareService)
	router := newShareRouter(svc, true)
	svc.On("NewShareDraft", "a/b/c.txt").Return(model.NewShareDraft("a/b", "c.txt")).Once()

	rec := serve(router, http.MethodGet, "/api/shares/new?path=a/b/c.txt", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp requestresponse.ShareDraftResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "a/b", resp.Data.Directory)
	assert.Equal(t, "c.txt", resp.Data.Name)
	assert.True(t, resp.Data.DownloadEnabled)
	assert.True(t, resp.Data.ForceDownload)
}

func TestEditShare(t *testing.T) {
	svc := new(MockShareService)
	router := newShareRouter(svc, true)

	edited := testShare()
	edited.Name = "dog.jpg"
	edited.DownloadEnabled = false
	expectedDraft := model.ShareDraft{Directory: "photos", Name: "dog.jpg", DownloadEnabled: false, ForceDownload: true}
	svc.On("EditShare", mock.Anything, int64(42), testUserUUID, expectedDraft).Return(edited, nil).Once()
	svc.On("EditShare", mock.Anything, int64(8), testUserUUID, mock.Anything).Return(nil, fmt.Errorf("[ShareService] %w", model.ErrNotFound)).Once()

	ok := serve(router, http.MethodPost, "/api/shares/42/edit", `{"directory":"photos","name":"dog.jpg","download_enabled":false}`)
	missing := serve(router, http.MethodPost, "/api/shares/8/edit", `{"name":"dog.jpg"}`)

	require.Equal(t, http.StatusOK, ok.Code)
	var resp requestresponse.GetShareResponse
	require.NoError(t, json.NewDecoder(ok.Body).Decode(&resp))
	assert.Equal(t, "aZ3kP9qL0mX7tRw", resp.Data.Share.Slug)
	assert.False(t, resp.Data.Share.DownloadEnabled)
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestDeleteShare(t *testing.T) {
	svc := new(MockShareService)
	router := newShareRouter(svc, true)
	svc.On("DeleteShare", mock.Anything, int64(42), testUserUUID).Return(nil).Once()
	svc.On("DeleteShare", mock.Anything, int64(43), testUserUUID).Return(errors.New("redis down")).Once()

	ok := serve(router, http.MethodPost, "/api/shares/42/delete", "")
	failed := serve(router, http.MethodPost, "/api/shares/43/delete", "")

	require.Equal(t, http.StatusOK, ok.Code)
	var resp requestresponse.DeleteShareResponse
	require.NoError(t, json.NewDecoder(ok.Body).Decode(&resp))
	assert.True(t, resp.Response.Deleted)
	assert.Equal(t, int64(42), resp.Response.ID)
	assert.Equal(t, http.StatusInternalServerError, failed.Code)
}
