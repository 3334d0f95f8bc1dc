package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	e1 := New("cause1")
	e2 := New("cause2").Wrap(e1)
	e := New("dummy").Wrap(e2)
	e3 := e.Unwrap()
	assert.True(t, Is(e, e1))
	assert.True(t, Is(e, e2))
	assert.True(t, e3 == e2)
	assert.Equal(t, "dummy: cause2: cause1", e.Error())
}

func TestWrapKeepsSentinel(t *testing.T) {
	sentinel := New("not found")
	cause := fmt.Errorf("no entry")

	w1 := sentinel.Wrap(cause)
	w2 := sentinel.Wrapf("other")

	require.NotSame(t, sentinel, w1)
	assert.Nil(t, sentinel.Unwrap(), "wrapping must not mutate the sentinel")
	assert.True(t, Is(w1, sentinel))
	assert.True(t, Is(w2, sentinel))
	assert.True(t, Is(w1, cause))
	assert.False(t, Is(w1, New("not found")))
	assert.Equal(t, "not found: other", w2.Error())

	var target *Error
	require.True(t, As(fmt.Errorf("outer: %w", w1), &target))
	assert.True(t, Is(target, sentinel))
}
