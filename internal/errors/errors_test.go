package errors

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

type codeError struct{ code int }

func (e *codeError) Error() string { return "code error" }

func TestFind(t *testing.T) {
	err := Wrap(Wrap(&codeError{code: 401}, "list orders"), "poll")

	got, ok := Find[*codeError](err)
	assert.True(t, ok)
	assert.Equal(t, 401, got.code)

	_, ok = Find[*os.PathError](err)
	assert.False(t, ok)
}

func TestIsAny(t *testing.T) {
	err := Wrap(io.ErrUnexpectedEOF, "read body")

	assert.True(t, IsAny(err, io.EOF, io.ErrUnexpectedEOF))
	assert.False(t, IsAny(err, io.EOF))
	assert.False(t, IsAny(nil, io.EOF))
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "nothing"))
	assert.NoError(t, Wrapf(nil, "nothing %d", 1))
}
