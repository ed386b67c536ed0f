package assert

import (
	"fmt"
	"testing"

	assert2 "github.com/stretchr/testify/assert"
)

func True(condition bool, errMsg string, arg ...any) {
	if !condition {
		panic(fmt.Sprintf("Assertion Failed: %s\n", fmt.Sprintf(errMsg, arg...)))
	}
}

// Next is a test helper to verify the next call to next yields want
func Next[T ~uint8](t *testing.T, next func() (T, bool), want T) {
	t.Helper()
	got, ok := next()
	assert2.True(t, ok)
	assert2.Equal(t, want, got)
}

// Exhausted is a test helper to verify the cursor signals end-of-sequence
func Exhausted[T ~uint8](t *testing.T, next func() (T, bool)) {
	t.Helper()
	_, ok := next()
	assert2.False(t, ok)
}
