package server

import (
	"crypto/ed25519"
	"crypto/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gossh "golang.org/x/crypto/ssh"

	"intervo/internal/logging"
)

func TestMain(m *testing.M) {
	logging.Initialize(false, "", 0)
	os.Exit(m.Run())
}

func generateTestKey(t *testing.T) gossh.PublicKey {
	t.Helper()
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	key, err := gossh.NewPublicKey(pub)
	require.NoError(t, err)
	return key
}

func writeAuthorizedKeys(t *testing.T, keys ...gossh.PublicKey) string {
	t.Helper()
	var lines []string
	lines = append(lines, "# managed test file", "")
	for _, key := range keys {
		lines = append(lines, strings.TrimSpace(string(gossh.MarshalAuthorizedKey(key))))
	}
	path := filepath.Join(t.TempDir(), "authorized_keys")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0600))
	return path
}

func TestIsKeyAuthorized_KnownKey(t *testing.T) {
	key := generateTestKey(t)
	other := generateTestKey(t)
	path := writeAuthorizedKeys(t, other, key)

	assert.True(t, isKeyAuthorized(key, path))
}

func TestIsKeyAuthorized_UnknownKey(t *testing.T) {
	known := generateTestKey(t)
	stranger := generateTestKey(t)
	path := writeAuthorizedKeys(t, known)

	assert.False(t, isKeyAuthorized(stranger, path))
}

func TestIsKeyAuthorized_MissingFile(t *testing.T) {
	key := generateTestKey(t)
	assert.False(t, isKeyAuthorized(key, filepath.Join(t.TempDir(), "does-not-exist")))
}

func TestGetKeyFingerprint(t *testing.T) {
	key := generateTestKey(t)
	fingerprint := getKeyFingerprint(key)

	assert.True(t, strings.HasPrefix(fingerprint, "MD5:"))
	// 16 hash bytes rendered as colon-separated hex pairs
	assert.Len(t, strings.Split(strings.TrimPrefix(fingerprint, "MD5:"), ":"), 16)
}
