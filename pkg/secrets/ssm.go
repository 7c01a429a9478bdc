// Package secrets reads decrypted values from the cloud parameter store.
package secrets

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"

	"github.com/anchorline/ecrmirror/pkg/util/console"
)

// Store fetches an opaque secret value by name. The production
// implementation is backed by SSM; tests substitute their own.
type Store interface {
	Get(ctx context.Context, name string) (string, error)
}

type ParameterStore struct {
	client *ssm.Client
}

func NewParameterStore(ctx context.Context, region string) (*ParameterStore, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS configuration for region %q: %w", region, err)
	}
	return &ParameterStore{client: ssm.NewFromConfig(cfg)}, nil
}

// Get fetches a parameter with decryption.
func (s *ParameterStore) Get(ctx context.Context, name string) (string, error) {
	console.Debugf("fetching parameter %s", name)

	out, err := s.client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("fetching parameter %q: %w", name, err)
	}
	if out.Parameter == nil || out.Parameter.Value == nil {
		return "", fmt.Errorf("parameter %q has no value", name)
	}
	return *out.Parameter.Value, nil
}
