package archiver

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	objects map[string][]byte
	puts    int
}

func (f *fakeS3) HeadObject(_ context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	if _, ok := f.objects[aws.ToString(in.Key)]; !ok {
		return nil, &smithy.GenericAPIError{Code: "NotFound"}
	}
	return &s3.HeadObjectOutput{LastModified: aws.Time(time.Unix(0, 0))}, nil
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	b, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Key)] = b
	f.puts++
	return &s3.PutObjectOutput{}, nil
}

func TestPublish(t *testing.T) {
	client := &fakeS3{objects: map[string][]byte{}}

	a, err := New(client, "s3://exports/n_non_ref.csv", false)
	require.NoError(t, err)
	assert.Equal(t, "exports", a.S3Bucket)
	assert.Equal(t, "n_non_ref.csv", a.S3Key)

	require.NoError(t, a.Publish(context.Background(), []byte("a,b\n"), "text/csv"))
	assert.Equal(t, []byte("a,b\n"), client.objects["n_non_ref.csv"])

	err = a.Publish(context.Background(), []byte("c,d\n"), "text/csv")
	assert.True(t, errors.Is(err, ErrFileAlreadyExists))
	assert.Equal(t, 1, client.puts)

	a.Overwrite = true
	require.NoError(t, a.Publish(context.Background(), []byte("c,d\n"), "text/csv"))
	assert.Equal(t, []byte("c,d\n"), client.objects["n_non_ref.csv"])
}

func TestNewRejectsBadDestination(t *testing.T) {
	for _, dest := range []string{"exports/a.csv", "s3://exports", "s3:///a.csv", "s3://exports/"} {
		_, err := New(nil, dest, false)
		assert.Error(t, err, dest)
	}
}
