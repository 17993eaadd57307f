package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/i18n"
)

func TestYAMLParser(t *testing.T) {
	t.Parallel()

	p := i18n.NewYAMLParser()

	t.Run("parses key-major document", func(t *testing.T) {
		t.Parallel()
		content := []byte(`
LengthRange:
  en: "Value must be between {0} and {1} characters."
  de: "Wert muss zwischen {0} und {1} Zeichen lang sein."
`)
		out, err := p.Parse(context.Background(), content)
		require.NoError(t, err)
		assert.Equal(t, "Value must be between {0} and {1} characters.", out["LengthRange"]["en"])
		assert.Len(t, out["LengthRange"], 2)
	})

	t.Run("rejects nested structure", func(t *testing.T) {
		t.Parallel()
		_, err := p.Parse(context.Background(), []byte("Key:\n  en:\n    deep: x\n"))
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("rejects empty document", func(t *testing.T) {
		t.Parallel()
		_, err := p.Parse(context.Background(), []byte("# nothing\n"))
		assert.ErrorIs(t, err, i18n.ErrInvalidCatalogShape)
	})

	t.Run("honours cancellation", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := p.Parse(ctx, []byte("Key:\n  en: x\n"))
		assert.ErrorIs(t, err, i18n.ErrYAMLParsingCancelled)
		assert.ErrorIs(t, err, context.Canceled)
	})

	assert.True(t, p.SupportsFileExtension(".yml"))
	assert.True(t, p.SupportsFileExtension("YAML"))
	assert.False(t, p.SupportsFileExtension("json"))
}

func TestJSONParser(t *testing.T) {
	t.Parallel()

	p := i18n.NewJSONParser()

	out, err := p.Parse(context.Background(), []byte(`{"InvalidEmail":{"en":"Invalid email format.","es":"Formato de correo electrónico no válido."}}`))
	require.NoError(t, err)
	assert.Equal(t, "Invalid email format.", out["InvalidEmail"]["en"])

	_, err = p.Parse(context.Background(), []byte(`{"InvalidEmail": "flat"}`))
	assert.ErrorIs(t, err, i18n.ErrFailedToParseJSON)

	_, err = p.Parse(context.Background(), []byte(`{}`))
	assert.ErrorIs(t, err, i18n.ErrInvalidCatalogShape)

	assert.True(t, p.SupportsFileExtension(".json"))
	assert.False(t, p.SupportsFileExtension("yaml"))
}

func TestNewParserForFile(t *testing.T) {
	t.Parallel()

	assert.IsType(t, &i18n.JSONParser{}, i18n.NewParserForFile("messages.json"))
	assert.IsType(t, &i18n.YAMLParser{}, i18n.NewParserForFile("messages.YML"))
	assert.IsType(t, &i18n.YAMLParser{}, i18n.NewParserForFile("dir/messages.yaml"))
	assert.Nil(t, i18n.NewParserForFile("messages.toml"))
	assert.Nil(t, i18n.NewParserForFile("messages"))
}
