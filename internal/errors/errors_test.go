package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanErrorMessage(t *testing.T) {
	err := &ScanError{Root: "templates", Path: "templates/broken", Err: fs.ErrPermission}
	assert.Contains(t, err.Error(), "templates/broken")
	assert.ErrorIs(t, err, fs.ErrPermission)
}

func TestScanErrorWithoutPath(t *testing.T) {
	err := &ScanError{Root: "missing", Err: fs.ErrNotExist}
	assert.Equal(t, "scanning missing: file does not exist", err.Error())
}

func TestBuildErrorNamesFile(t *testing.T) {
	inner := errors.New("unexpected EOF")
	err := &BuildError{File: "crate/details.html", Err: inner}
	assert.Contains(t, err.Error(), `"crate/details.html"`)
	assert.ErrorIs(t, err, inner)
}

func TestFilterErrorMessage(t *testing.T) {
	err := &FilterError{Filter: "timeformat", Msg: "expected duration filter input to be numeric", Value: "soon"}
	assert.Contains(t, err.Error(), "timeformat")
	assert.Contains(t, err.Error(), "string")
}

func TestIsBuildErrorUnwrapsChains(t *testing.T) {
	inner := &BuildError{File: "index.html", Err: errors.New("bad syntax")}
	wrapped := fmt.Errorf("reload failed: %w", inner)

	assert.True(t, IsBuildError(wrapped))
	assert.False(t, IsBuildError(errors.New("unrelated")))
}

func TestIsScanError(t *testing.T) {
	inner := &ScanError{Root: "templates", Err: fs.ErrNotExist}
	assert.True(t, IsScanError(fmt.Errorf("startup: %w", inner)))
	assert.False(t, IsScanError(fs.ErrNotExist))
}
