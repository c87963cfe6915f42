// Package archiver publishes export artifacts to object storage.
package archiver

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const Scheme = "s3://"

var ErrFileAlreadyExists = errors.New("file already exists")

// ObjectAPI is the subset of *s3.Client the archiver needs.
type ObjectAPI interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type Archiver struct {
	S3Client ObjectAPI
	S3Bucket string
	S3Key    string

	// Overwrite allows replacing an existing object.
	Overwrite bool

	logger *zerolog.Logger
}

// New parses an s3://bucket/key destination.
func New(client ObjectAPI, dest string, overwrite bool) (*Archiver, error) {
	bucket, key, ok := strings.Cut(strings.TrimPrefix(dest, Scheme), "/")
	if !strings.HasPrefix(dest, Scheme) || !ok || bucket == "" || key == "" {
		return nil, errors.Errorf("invalid destination %q: expect s3://bucket/key", dest)
	}
	logger := log.With().
		Str("module", "archiver").
		Str("bucket", bucket).
		Str("key", key).
		Logger()
	return &Archiver{
		S3Client:  client,
		S3Bucket:  bucket,
		S3Key:     key,
		Overwrite: overwrite,
		logger:    &logger,
	}, nil
}

// Publish uploads body unless the object already exists and Overwrite is off.
func (a *Archiver) Publish(ctx context.Context, body []byte, contentType string) error {
	if !a.Overwrite {
		if err := a.assertS3FileNonExistence(ctx); err != nil {
			return err
		}
		a.logger.Trace().Msg("asserted S3 file non-existence")
	}

	if _, err := a.S3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:            aws.String(a.S3Bucket),
		Key:               aws.String(a.S3Key),
		Body:              bytes.NewReader(body),
		ContentType:       aws.String(contentType),
		ChecksumAlgorithm: types.ChecksumAlgorithmSha256,
	}); err != nil {
		return errors.Wrap(err, "failed to invoke PutObject")
	}

	a.logger.Info().Int("size", len(body)).Msg("export published")
	return nil
}

func (a *Archiver) assertS3FileNonExistence(ctx context.Context) error {
	object, err := a.S3Client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(a.S3Bucket),
		Key:    aws.String(a.S3Key),
	})
	if err != nil {
		var ae smithy.APIError
		if errors.As(err, &ae) && ae.ErrorCode() == "NotFound" {
			return nil
		}
		return errors.Wrap(err, "failed to invoke HeadObject")
	}
	return errors.Wrap(ErrFileAlreadyExists, fmt.Sprintf("file \"%s\" already exists in s3 with LastModified \"%s\"", a.S3Key, object.LastModified))
}
