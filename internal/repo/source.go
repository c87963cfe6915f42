package repo

import (
	"bytes"
	"context"
	"io"
	"os"
	"path"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"sumstats.dev/explorer/internal/app/appconfig"
	"sumstats.dev/explorer/internal/core/table"
	"sumstats.dev/explorer/internal/pkg/observability"
)

const ExtXLSX = ".xlsx"

// permanentS3Codes are S3 error codes for which retrying cannot help.
var permanentS3Codes = map[string]struct{}{
	"NoSuchKey":             {},
	"NoSuchBucket":          {},
	"NotFound":              {},
	"AccessDenied":          {},
	"InvalidAccessKeyId":    {},
	"SignatureDoesNotMatch": {},
}

// Source reads the raw bytes of the summary statistics table from DataPath.
type Source struct {
	conf     *appconfig.Config
	s3Client *s3.Client
}

func NewSource(conf *appconfig.Config, s3Client *s3.Client) *Source {
	return &Source{
		conf:     conf,
		s3Client: s3Client,
	}
}

// Location is the configured data path.
func (s *Source) Location() string {
	return s.conf.DataPath
}

// Read returns the table bytes, fetching from S3 with retries when DataPath is an s3:// URL.
func (s *Source) Read(ctx context.Context) ([]byte, error) {
	if !s.conf.DataOnS3() {
		b, err := os.ReadFile(s.conf.DataPath)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read data file %q", s.conf.DataPath)
		}
		return b, nil
	}

	bucket, key, err := s.conf.DataS3Location()
	if err != nil {
		return nil, err
	}

	attempts := s.conf.S3FetchAttempts
	if attempts == 0 {
		// retry-go treats zero as unlimited
		attempts = 1
	}

	var body []byte
	err = retry.Do(
		func() error {
			b, err := s.getObject(ctx, bucket, key)
			if err != nil {
				return err
			}
			body = b
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(500*time.Millisecond),
		retry.LastErrorOnly(true),
		retry.RetryIf(retryableS3Error),
		retry.OnRetry(func(n uint, err error) {
			log.Warn().
				Err(err).
				Str("evt.name", "repo.source.s3.retry").
				Uint("attempt", n+1).
				Str("bucket", bucket).
				Str("key", key).
				Msg("failed to fetch source table from s3, retrying")
		}),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch %q", s.conf.DataPath)
	}
	return body, nil
}

func (s *Source) getObject(ctx context.Context, bucket, key string) ([]byte, error) {
	out, err := s.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to invoke GetObject")
	}
	defer out.Body.Close()

	b, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read object body")
	}
	return b, nil
}

func retryableS3Error(err error) bool {
	var ae smithy.APIError
	if errors.As(err, &ae) {
		_, permanent := permanentS3Codes[ae.ErrorCode()]
		return !permanent
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// Parse decodes b by the extension of location: workbooks for .xlsx, CSV otherwise.
func Parse(location string, b []byte) (*table.Table, error) {
	if strings.EqualFold(path.Ext(location), ExtXLSX) {
		return table.ReadXLSX(bytes.NewReader(b))
	}
	return table.ReadCSV(bytes.NewReader(b))
}

// Dataset is the loaded source table together with where and when it was loaded.
type Dataset struct {
	*table.Table

	Location string
	LoadedAt time.Time
}

// LoadDataset reads and parses the source table once. Any schema violation aborts start-up.
func LoadDataset(src *Source) (*Dataset, error) {
	start := time.Now()
	location := src.Location()

	b, err := src.Read(context.Background())
	if err != nil {
		return nil, err
	}

	t, err := Parse(location, b)
	if err != nil {
		log.Error().
			Err(err).
			Str("evt.name", "repo.source.parse").
			Str("location", location).
			Msg("source table rejected")
		return nil, err
	}

	elapsed := time.Since(start)
	observability.SourceRows.Set(float64(t.Len()))
	observability.SourceLoadDuration.Set(elapsed.Seconds())

	if ignored := t.Ignored(); len(ignored) > 0 {
		log.Warn().
			Str("evt.name", "repo.source.ignored_columns").
			Strs("columns", ignored).
			Msg("source table has columns that are neither id columns nor metric statistics")
	}

	log.Info().
		Str("evt.name", "repo.source.loaded").
		Str("location", location).
		Int("rows", t.Len()).
		Strs("metrics", t.Metrics()).
		Dur("took", elapsed).
		Msg("source table loaded")

	return &Dataset{
		Table:    t,
		Location: location,
		LoadedAt: time.Now(),
	}, nil
}
