package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCICDErrorMessage(t *testing.T) {
	err := ConfigError("bad log level", nil)
	assert.Equal(t, "[CONFIG] bad log level", err.Error())

	wrapped := IOError("failed to read file", fs.ErrNotExist)
	assert.Equal(t, "[IO] failed to read file: file does not exist", wrapped.Error())
	assert.True(t, stderrors.Is(wrapped, fs.ErrNotExist))
}

func TestIsType(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		errType ErrorType
		want    bool
	}{
		{name: "nil", err: nil, errType: ErrConfig, want: false},
		{name: "plain error", err: stderrors.New("boom"), errType: ErrConfig, want: false},
		{name: "matching type", err: ValidationError("x", nil), errType: ErrValidation, want: true},
		{name: "other type", err: ValidationError("x", nil), errType: ErrIO, want: false},
		{name: "wrapped", err: fmt.Errorf("outer: %w", DetectionError("none")), errType: ErrDetection, want: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsType(tc.err, tc.errType))
		})
	}
}

func TestWithContext(t *testing.T) {
	err := IOError("failed to read file", nil).WithContext("path", "/tmp/x")
	assert.Equal(t, "/tmp/x", err.Context["path"])
}

func TestShouldBlockCI(t *testing.T) {
	assert.True(t, ShouldBlockCI(ConfigError("x", nil)))
	assert.True(t, ShouldBlockCI(DetectionError("x")))
	assert.False(t, ShouldBlockCI(stderrors.New("plain")))
}
