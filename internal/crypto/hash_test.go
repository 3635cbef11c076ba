package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyAccessKey(t *testing.T) {
	hash, salt, err := HashAccessKey("correct horse battery", "0a0b0c0d", testParams)
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	require.NotEmpty(t, salt)

	tests := []struct {
		name      string
		accessKey string
		siteID    string
		hash      string
		salt      string
		wantErr   error
		errMsg    string
	}{
		{
			name:      "valid key",
			accessKey: "correct horse battery",
			siteID:    "0a0b0c0d",
			hash:      hash,
			salt:      salt,
		},
		{
			name:      "wrong key",
			accessKey: "wrong horse battery",
			siteID:    "0a0b0c0d",
			hash:      hash,
			salt:      salt,
			wantErr:   ErrInvalidAccessKey,
		},
		{
			name:      "wrong site",
			accessKey: "correct horse battery",
			siteID:    "1a1b1c1d",
			hash:      hash,
			salt:      salt,
			wantErr:   ErrInvalidAccessKey,
		},
		{
			name:      "empty hash",
			accessKey: "correct horse battery",
			siteID:    "0a0b0c0d",
			salt:      salt,
			errMsg:    "hashed access key cannot be empty",
		},
		{
			name:      "broken salt",
			accessKey: "correct horse battery",
			siteID:    "0a0b0c0d",
			hash:      hash,
			salt:      "%%%",
			errMsg:    "failed to decode salt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyAccessKey(tt.accessKey, tt.siteID, tt.hash, tt.salt, testParams)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.errMsg != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestHashAccessKey_UniqueSalt(t *testing.T) {
	hash1, salt1, err := HashAccessKey("correct horse battery", "0a0b0c0d", testParams)
	require.NoError(t, err)
	hash2, salt2, err := HashAccessKey("correct horse battery", "0a0b0c0d", testParams)
	require.NoError(t, err)

	assert.NotEqual(t, salt1, salt2)
	assert.NotEqual(t, hash1, hash2)
}
