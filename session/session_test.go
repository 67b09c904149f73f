package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nested", "token"))

	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token, "fresh store should have no session")

	require.NoError(t, store.Save("abc123"))
	token, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	require.NoError(t, store.Clear())
	token, err = store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	// clearing twice is fine
	require.NoError(t, store.Clear())
}

func TestStoreSaveEmpty(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "token"))
	assert.Error(t, store.Save(""))
}

func TestExtractToken(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"bare token", "eyJhbGciOi.token.sig", "eyJhbGciOi.token.sig", false},
		{"padded token", "  tok  \n", "tok", false},
		{"redirect URL", "https://app.example/?token=tok123&session_expired=false", "tok123", false},
		{"URL without token", "https://app.example/?session_expired=true", "", true},
		{"empty", "   ", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractToken(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
