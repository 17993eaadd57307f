package binder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/binder"
)

func TestFormatForFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path    string
		want    binder.Format
		wantErr bool
	}{
		{path: "user.json", want: binder.FormatJSON},
		{path: "user.YAML", want: binder.FormatYAML},
		{path: "dir/user.yml", want: binder.FormatYAML},
		{path: "user.toml", wantErr: true},
		{path: "user", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			got, err := binder.FormatForFile(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, binder.ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDocument(t *testing.T) {
	t.Parallel()

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()
		var got request
		err := binder.Document(binder.FormatYAML, []byte("name: Jane\nage: 41\n"), &got)
		require.NoError(t, err)
		require.NotNil(t, got.Name)
		assert.Equal(t, "Jane", *got.Name)
		assert.Equal(t, 41, got.Age)
	})

	t.Run("yaml null stays nil", func(t *testing.T) {
		t.Parallel()
		var got request
		require.NoError(t, binder.Document(binder.FormatYAML, []byte("name: null\nage: 1\n"), &got))
		assert.Nil(t, got.Name)
	})

	t.Run("yaml unknown field", func(t *testing.T) {
		t.Parallel()
		var got request
		err := binder.Document(binder.FormatYAML, []byte("nickname: jd\n"), &got)
		assert.ErrorIs(t, err, binder.ErrFailedToParseDoc)
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		var got request
		require.NoError(t, binder.Document(binder.FormatJSON, []byte(`{"email":"a@b.co"}`), &got))
		assert.Equal(t, "a@b.co", got.Email)
	})

	t.Run("json error wraps both sentinels", func(t *testing.T) {
		t.Parallel()
		var got request
		err := binder.Document(binder.FormatJSON, []byte(`{"age":"x"}`), &got)
		assert.ErrorIs(t, err, binder.ErrFailedToParseDoc)
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()
		var got request
		err := binder.Document(binder.FormatYAML, []byte("  \n"), &got)
		assert.ErrorIs(t, err, binder.ErrFailedToParseDoc)
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()
		var got request
		err := binder.Document(binder.Format("toml"), []byte("a = 1"), &got)
		assert.ErrorIs(t, err, binder.ErrUnknownFormat)
	})
}
