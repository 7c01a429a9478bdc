package registry

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anchorline/ecrmirror/pkg/errors"
)

func TestParseAuthorizationToken(t *testing.T) {
	token := base64.StdEncoding.EncodeToString([]byte("AWS:super-secret"))

	creds, err := parseAuthorizationToken(token)
	require.NoError(t, err)
	require.Equal(t, "AWS", creds.Username)
	require.Equal(t, "super-secret", creds.Password)
}

func TestParseAuthorizationTokenPasswordWithColon(t *testing.T) {
	token := base64.StdEncoding.EncodeToString([]byte("AWS:eyJw:YXls"))

	creds, err := parseAuthorizationToken(token)
	require.NoError(t, err)
	require.Equal(t, "eyJw:YXls", creds.Password)
}

func TestParseAuthorizationTokenErrors(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "not base64", token: "%%%"},
		{name: "no separator", token: base64.StdEncoding.EncodeToString([]byte("AWSsecret"))},
		{name: "empty username", token: base64.StdEncoding.EncodeToString([]byte(":secret"))},
		{name: "empty password", token: base64.StdEncoding.EncodeToString([]byte("AWS:"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseAuthorizationToken(tt.token)
			require.Error(t, err)
			require.True(t, errors.IsAuth(err))
		})
	}
}
