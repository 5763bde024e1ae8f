package go_func_utils

import (
	"bytes"
	"errors"
	"log"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuard_RecoversPanic(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	err := Guard(logger, func() error { panic("boom") })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.Contains(t, buf.String(), "PANIC: boom")
}

func TestGuard_PassesError(t *testing.T) {
	want := errors.New("failed")
	err := Guard(log.New(&bytes.Buffer{}, "", 0), func() error { return want })
	assert.ErrorIs(t, err, want)
}

func TestSafeGo_CollectsErrors(t *testing.T) {
	logger := log.New(&bytes.Buffer{}, "", 0)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var errs []error

	onErr := func(err error) {
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
	}

	SafeGo(logger, &wg, func() error { return nil }, onErr)
	SafeGo(logger, &wg, func() error { return errors.New("bad") }, onErr)
	SafeGo(logger, &wg, func() error { panic("worse") }, onErr)
	wg.Wait()

	assert.Len(t, errs, 2)
}
