package binder_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/binder"
)

type request struct {
	Name  *string `json:"name" yaml:"name"`
	Age   int     `json:"age" yaml:"age"`
	Email string  `json:"email" yaml:"email"`
}

func newRequest(body, contentType string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req
}

func TestJSON(t *testing.T) {
	t.Parallel()

	bind := binder.JSON(0)

	t.Run("valid body", func(t *testing.T) {
		t.Parallel()
		var got request
		err := bind(newRequest(`{"name":"John","age":30,"email":"john@example.com"}`, "application/json"), &got)
		require.NoError(t, err)
		require.NotNil(t, got.Name)
		assert.Equal(t, "John", *got.Name)
		assert.Equal(t, 30, got.Age)
		assert.Equal(t, "john@example.com", got.Email)
	})

	t.Run("content type with charset", func(t *testing.T) {
		t.Parallel()
		var got request
		err := bind(newRequest(`{"age":25}`, "application/json; charset=utf-8"), &got)
		require.NoError(t, err)
		assert.Equal(t, 25, got.Age)
	})

	t.Run("absent field stays nil", func(t *testing.T) {
		t.Parallel()
		var got request
		require.NoError(t, bind(newRequest(`{"email":"  padded  "}`, "application/json"), &got))
		assert.Nil(t, got.Name)
		assert.Equal(t, "  padded  ", got.Email)
	})

	t.Run("missing content type", func(t *testing.T) {
		t.Parallel()
		var got request
		err := bind(newRequest(`{}`, ""), &got)
		assert.ErrorIs(t, err, binder.ErrMissingContentType)
	})

	t.Run("wrong content type", func(t *testing.T) {
		t.Parallel()
		var got request
		err := bind(newRequest(`{}`, "text/plain"), &got)
		assert.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		t.Parallel()
		var got request
		err := bind(newRequest(`{"name":`, "application/json"), &got)
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})

	t.Run("type mismatch", func(t *testing.T) {
		t.Parallel()
		var got request
		err := bind(newRequest(`{"age":"thirty"}`, "application/json"), &got)
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()
		var got request
		err := bind(newRequest(`{"nickname":"jd"}`, "application/json"), &got)
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()
		var got request
		err := bind(newRequest(``, "application/json"), &got)
		require.ErrorIs(t, err, binder.ErrFailedToParseJSON)
		assert.Contains(t, err.Error(), "empty body")
	})

	t.Run("trailing data", func(t *testing.T) {
		t.Parallel()
		var got request
		err := bind(newRequest(`{"age":1}{"age":2}`, "application/json"), &got)
		require.ErrorIs(t, err, binder.ErrFailedToParseJSON)
		assert.Contains(t, err.Error(), "unexpected data")
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		var got request
		err := bind(newRequest(`{}`, "application/json").WithContext(ctx), &got)
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})
}

func TestJSON_SizeLimit(t *testing.T) {
	t.Parallel()

	bind := binder.JSON(16)

	var got request
	require.NoError(t, bind(newRequest(`{"age":1}`, "application/json"), &got))

	err := bind(newRequest(`{"email":"someone@example.com"}`, "application/json"), &got)
	assert.ErrorIs(t, err, binder.ErrBodyTooLarge)
}
