package infra

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"sumstats.dev/explorer/internal/app/appconfig"
)

// S3 builds the object storage client used to fetch the source table and to publish exports.
// No request is made here: a deployment reading a local file never touches S3.
func S3(conf *appconfig.Config) (*s3.Client, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(conf.S3Region),
		config.WithRetryMaxAttempts(1),
	}
	if conf.S3AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(conf.S3AccessKey, conf.S3SecretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load aws config")
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if conf.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(conf.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	log.Debug().
		Str("evt.name", "infra.s3.init").
		Str("region", conf.S3Region).
		Str("endpoint", conf.S3Endpoint).
		Bool("static_credentials", conf.S3AccessKey != "").
		Msg("s3 client configured")

	return client, nil
}
