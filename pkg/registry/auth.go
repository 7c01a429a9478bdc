// Package registry exchanges the run's cloud identity for short-lived
// registry credentials.
package registry

import (
	"context"
	"encoding/base64"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ecr"

	"github.com/anchorline/ecrmirror/pkg/errors"
	"github.com/anchorline/ecrmirror/pkg/util/console"
)

// Credentials is a username/password pair accepted by the image engine's
// login call. The password expires after a few hours.
type Credentials struct {
	Username string
	Password string
}

// Authenticate requests an authorization token for the region's registry
// and decodes it into login credentials. Any failure here is fatal for the
// run; there is no fallback identity.
func Authenticate(ctx context.Context, region string) (*Credentials, error) {
	console.Debugf("requesting registry authorization token for %s", region)

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, errors.Auth(err, "loading AWS configuration for region %q", region)
	}

	out, err := ecr.NewFromConfig(cfg).GetAuthorizationToken(ctx, &ecr.GetAuthorizationTokenInput{})
	if err != nil {
		return nil, errors.Auth(err, "requesting authorization token")
	}
	if len(out.AuthorizationData) == 0 || out.AuthorizationData[0].AuthorizationToken == nil {
		return nil, errors.Auth(nil, "registry returned no authorization data")
	}

	return parseAuthorizationToken(*out.AuthorizationData[0].AuthorizationToken)
}

// parseAuthorizationToken decodes the base64 "username:password" token
// returned by the token exchange.
func parseAuthorizationToken(token string) (*Credentials, error) {
	decoded, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, errors.Auth(err, "decoding authorization token")
	}
	username, password, ok := strings.Cut(string(decoded), ":")
	if !ok || username == "" || password == "" {
		return nil, errors.Auth(nil, "authorization token is not a username:password pair")
	}
	return &Credentials{Username: username, Password: password}, nil
}
