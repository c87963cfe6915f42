package appconfig

import (
	"fmt"
	"strings"
)

const (
	TracingExporterOTLP   = "otlp"
	TracingExporterStdout = "stdout"
)

const s3Scheme = "s3://"

func (c ConfigSpec) TracingExportersValid() error {
	for _, e := range c.TracingExporters {
		switch e {
		case TracingExporterOTLP, TracingExporterStdout:
		default:
			return fmt.Errorf("invalid tracing exporter %q: expect one of %s, %s", e, TracingExporterOTLP, TracingExporterStdout)
		}
	}
	return nil
}

// DataOnS3 reports whether DataPath points into a bucket.
func (c ConfigSpec) DataOnS3() bool {
	return strings.HasPrefix(c.DataPath, s3Scheme)
}

// DataS3Location splits an s3://bucket/key DataPath.
func (c ConfigSpec) DataS3Location() (bucket, key string, err error) {
	rest := strings.TrimPrefix(c.DataPath, s3Scheme)
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid data path %q: expect s3://bucket/key", c.DataPath)
	}
	return bucket, key, nil
}
