//go:build !gocv
// +build !gocv

package vision

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGoCVTracer_StubReportsDisabled(t *testing.T) {
	_, err := NewGoCVTracer().Trace(nil)
	require.ErrorIs(t, err, ErrGoCVDisabled)
}
