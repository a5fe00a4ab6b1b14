// Package ses turns the published WP Offload SES credentials into an AWS
// configuration for the host's mail offload client.
package ses

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/nckslvrmn/wpenv/internal/loader"
)

// Constants is the read side of the constant registry.
type Constants interface {
	String(name string) string
}

// StaticCredentials returns a static provider built from the published
// access key pair. ok is false unless both halves are set.
func StaticCredentials(constants Constants) (provider aws.CredentialsProvider, ok bool) {
	keyID := constants.String(loader.SESAccessKeyID)
	secret := constants.String(loader.SESSecretAccessKey)
	if keyID == "" || secret == "" {
		return nil, false
	}
	return credentials.NewStaticCredentialsProvider(keyID, secret, ""), true
}

// LoadConfig builds an aws.Config for region. The published key pair is used
// when present, otherwise the SDK default credential chain applies.
func LoadConfig(ctx context.Context, constants Constants, region string) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}
	if provider, ok := StaticCredentials(constants); ok {
		opts = append(opts, awsconfig.WithCredentialsProvider(provider))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load aws config: %w", err)
	}
	return cfg, nil
}
