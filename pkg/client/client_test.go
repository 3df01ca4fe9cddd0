package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/abhishek622/hirewizard/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "email taken", ErrorMessage(&APIError{StatusCode: 409, Message: "email taken"}))
	assert.Equal(t, "request failed with status 500", ErrorMessage(&APIError{StatusCode: 500}))
	assert.Equal(t, "dial tcp: refused", ErrorMessage(errors.New("dial tcp: refused")))
	assert.Equal(t, FallbackMessage, ErrorMessage(errors.New("  ")))
	assert.Equal(t, FallbackMessage, ErrorMessage(nil))
}

func TestListJobs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/jobs", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "10", r.URL.Query().Get("offset"))
		assert.Equal(t, "go dev", r.URL.Query().Get("search"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"title":"Go Dev"}],"page":{"limit":10,"offset":10,"total":11,"nextOffset":null,"previousOffset":0}}`))
	}))
	defer srv.Close()

	res, err := New(srv.URL+"/", "tok").ListJobs(context.Background(), ListQuery{Limit: 10, Offset: 10, Search: "go dev"})
	require.NoError(t, err)
	require.Len(t, res.Data, 1)
	assert.Equal(t, "Go Dev", res.Data[0].Title)
	assert.Nil(t, res.Page.NextOffset)
	require.NotNil(t, res.Page.PreviousOffset)
	assert.Equal(t, 0, *res.Page.PreviousOffset)
	assert.Equal(t, 2, res.Page.Page().CurrentPage())
}

func TestInviteUserError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"a user with this email already exists"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, "").InviteUser(context.Background(), model.InviteUserReq{Name: "a", Email: "a@b.c"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "a user with this email already exists", ErrorMessage(err))
}

func TestInviteUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"name":"Ivan","email":"ivan@example.com","role":"interviewer","status":"invited"}}`))
	}))
	defer srv.Close()

	u, err := New(srv.URL, "tok").InviteUser(context.Background(), model.InviteUserReq{Name: "Ivan", Email: "ivan@example.com"})
	require.NoError(t, err)
	assert.Equal(t, model.UserStatusInvited, u.Status)
}

func TestSettings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/settings", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":{"searchDebounceMs":400,"pageLimit":10}}`))
	}))
	defer srv.Close()

	s, err := New(srv.URL, "").Settings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 400*time.Millisecond, s.SearchDebounce())
	assert.Equal(t, 10, s.PageLimit)
}
