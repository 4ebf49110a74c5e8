package config_test

import (
	"os"
	"testing"

	"github.com/skillfolio/skillfolio-lambda/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "01234567890123456789012345678901"

func TestInitCrypto(t *testing.T) {
	t.Run("ShortKey", func(t *testing.T) {
		os.Setenv("CRYPTO_KEY", "too-short")
		assert.Panics(t, func() { config.InitCrypto() })
	})

	t.Run("ValidKey", func(t *testing.T) {
		os.Setenv("CRYPTO_KEY", testKey)
		assert.NotPanics(t, func() { config.InitCrypto() })
	})
}

func TestEncryptDecrypt(t *testing.T) {
	os.Setenv("CRYPTO_KEY", testKey)
	config.InitCrypto()

	t.Run("RoundTrip", func(t *testing.T) {
		plaintext := "google-refresh-token-value"

		ciphertext, err := config.Encrypt(plaintext)
		require.NoError(t, err)

		decrypted, err := config.Decrypt(ciphertext)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)

		// Nonces must differ between calls.
		ciphertext2, err := config.Encrypt(plaintext)
		require.NoError(t, err)
		assert.NotEqual(t, ciphertext, ciphertext2)
	})

	t.Run("EmptyText", func(t *testing.T) {
		ciphertext, err := config.Encrypt("")
		require.NoError(t, err)

		decrypted, err := config.Decrypt(ciphertext)
		require.NoError(t, err)
		assert.Equal(t, "", decrypted)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := config.Decrypt("bm90LXJlYWwtY2lwaGVydGV4dA==")
		assert.Error(t, err)
	})
}
