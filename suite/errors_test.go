package suite

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeStatus(t *testing.T) {
	tests := []struct {
		code Code
		want Status
	}{
		{CodeGeneric, StatusGeneric},
		{CodeOutOfMemory, StatusOutOfMemory},
		{CodeInvalidIndex, StatusInvalidIndex},
		{CodeInvalidCallback, StatusInvalidCallback},
		{CodeInternalStructDamaged, StatusInternalStructDamaged},
		{CodeSerialization, StatusGeneric},
		{CodeUnsupported, StatusUnrecognizedParamType},
	}
	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.Status())
		})
	}
}

func TestErrorStatus(t *testing.T) {
	assert.Equal(t, StatusNone, ErrorStatus(nil))
	assert.Equal(t, StatusOutOfMemory, ErrorStatus(NewError(CodeOutOfMemory, "handle.Allocate")))
	assert.Equal(t, StatusGeneric, ErrorStatus(errors.New("unclassified")))

	wrapped := fmt.Errorf("outer: %w", NewError(CodeInvalidCallback, "suite.Acquire"))
	assert.Equal(t, StatusInvalidCallback, ErrorStatus(wrapped))
}

func TestErrorIsMatchesByCode(t *testing.T) {
	err := WrapError(CodeSerialization, "arb.Unmarshal", errors.New("bad cbor"))
	assert.ErrorIs(t, err, &Error{Code: CodeSerialization})
	assert.NotErrorIs(t, err, &Error{Code: CodeOutOfMemory})
}

func TestErrorMessage(t *testing.T) {
	err := WrapError(CodeOutOfMemory, "handle.Allocate", errors.New("host refused"))
	assert.Equal(t, "handle.Allocate: out_of_memory: host refused", err.Error())
	assert.Equal(t, "handle.Lock: internal_struct_damaged", NewError(CodeInternalStructDamaged, "handle.Lock").Error())
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeInvalidIndex, CodeOf(NewError(CodeInvalidIndex, "x")))
	assert.Equal(t, CodeGeneric, CodeOf(errors.New("plain")))
}

func TestAcquire(t *testing.T) {
	complete := &HandleSuite{
		New:     func(uint64) RawHandle { return 1 },
		Lock:    func(RawHandle) []byte { return nil },
		Unlock:  func(RawHandle) {},
		Dispose: func(RawHandle) {},
		Size:    func(RawHandle) uint64 { return 0 },
	}

	basic, err := Acquire(complete, nil)
	require.NoError(t, err)
	assert.Same(t, complete, basic.Handle)

	incomplete := &HandleSuite{New: complete.New}
	_, err = Acquire(incomplete, nil)
	require.Error(t, err)
	assert.Equal(t, CodeInvalidCallback, CodeOf(err))

	_, err = Acquire(nil, nil)
	require.Error(t, err)
	assert.Equal(t, CodeInvalidCallback, CodeOf(err))
}
