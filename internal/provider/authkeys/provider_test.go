package authkeys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostprep/hostprep/internal/testutil/mocks"
)

func newTestProvider() *Provider {
	return NewProvider(&fakeKeyReader{key: testKey}, mocks.NewFileSystem(), nil)
}

func TestProviderName(t *testing.T) {
	assert.Equal(t, "authorized_keys", newTestProvider().Name())
}

func TestCompileNilSection(t *testing.T) {
	steps, err := newTestProvider().Compile(nil)
	require.NoError(t, err)
	assert.Empty(t, steps)
}

func TestCompileManifestKeys(t *testing.T) {
	steps, err := newTestProvider().Compile(map[string]interface{}{
		"keys": []interface{}{
			"ssh-rsa FIRST user@one",
			"ssh-rsa SECOND user@two",
		},
	})
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, "authkeys:key:1", steps[0].ID().String())
	assert.Equal(t, "authkeys:key:2", steps[1].ID().String())
}

func TestCompilePromptStepLast(t *testing.T) {
	steps, err := newTestProvider().Compile(map[string]interface{}{
		"prompt": true,
		"keys":   []interface{}{"ssh-rsa FIRST user@one"},
	})
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, "authkeys:prompt", steps[1].ID().String())
}

func TestCompileRejectsNonStringKey(t *testing.T) {
	_, err := newTestProvider().Compile(map[string]interface{}{
		"keys": []interface{}{42},
	})
	require.Error(t, err)
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, DefaultPath, cfg.Path)
	assert.False(t, cfg.Prompt)
	assert.Empty(t, cfg.Keys)
}

func TestParseConfigCustomPath(t *testing.T) {
	cfg, err := ParseConfig(map[string]interface{}{"path": "/root/.ssh/authorized_keys"})
	require.NoError(t, err)
	assert.Equal(t, "/root/.ssh/authorized_keys", cfg.Path)
}
