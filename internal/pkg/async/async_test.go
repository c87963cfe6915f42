package async

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWaitAll(t *testing.T) {
	var n atomic.Int32
	err := WaitAll(
		Errable(func() error { n.Add(1); return nil }),
		Errable(func() error { n.Add(1); return nil }),
	)
	assert.NoError(t, err)
	assert.EqualValues(t, 2, n.Load())
}

func TestWaitAllReportsError(t *testing.T) {
	boom := errors.New("boom")
	err := WaitAll(
		Errable(func() error { return nil }),
		Errable(func() error { return boom }),
	)
	assert.ErrorIs(t, err, boom)
}

func TestWaitAllEmpty(t *testing.T) {
	assert.NoError(t, WaitAll())
}
