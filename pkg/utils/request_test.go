package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestURLParamUUID(t *testing.T) {
	id := uuid.New()
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id.String())
	rctx.URLParams.Add("bad", "42")
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))

	got, ok := URLParamUUID(r, "id")
	assert.True(t, ok)
	assert.Equal(t, id, got)

	_, ok = URLParamUUID(r, "bad")
	assert.False(t, ok)
}

func TestQueryHelpers(t *testing.T) {
	id := uuid.New()
	r := httptest.NewRequest(http.MethodGet, "/?page=3&limit=x&reviewer="+id.String()+"&scholarship=nope", nil)

	assert.Equal(t, 3, QueryInt(r, "page", 1))
	assert.Equal(t, 25, QueryInt(r, "limit", 25))
	assert.Equal(t, 7, QueryInt(r, "missing", 7))
	assert.Equal(t, &id, QueryUUID(r, "reviewer"))
	assert.Nil(t, QueryUUID(r, "scholarship"))
}
