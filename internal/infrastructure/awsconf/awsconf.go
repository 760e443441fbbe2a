package awsconf

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/go-docs-auth/internal/config"
)

// Load resolves the ambient AWS configuration (region + default credential chain).
// It never applies the admin secret; the gateway does that for administrative handles only.
func Load(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
}
