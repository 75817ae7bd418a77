package forgeerr_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdfforge/pdfforge/forgeerr"
)

func TestInvalidDataDir(t *testing.T) {
	err := forgeerr.InvalidDataDir("/no/such/dir", fs.ErrNotExist)
	assert.Equal(t, forgeerr.KindInvalidDataDir, err.Kind())
	assert.Contains(t, err.Error(), "[InvalidDataDir] /no/such/dir")
	assert.Contains(t, err.Error(), "file does not exist")
}

func TestUnsafeArchiveEntryNoCause(t *testing.T) {
	err := forgeerr.UnsafeArchiveEntry("../../evil")
	assert.Equal(t, forgeerr.KindUnsafeArchiveEntry, err.Kind())
	assert.Equal(t, "[UnsafeArchiveEntry] ../../evil", err.Error())
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := forgeerr.FetchFailed("https://example.test/Foo.tar.gz", cause)
	assert.ErrorIs(t, err, cause)
}

func TestKindOfWrapped(t *testing.T) {
	inner := forgeerr.PackagingDefect("templates/lhapdf.conf", fs.ErrNotExist)
	wrapped := fmt.Errorf("installing bootstrap files: %w", inner)

	assert.Equal(t, forgeerr.KindPackagingDefect, forgeerr.KindOf(wrapped))
	assert.True(t, forgeerr.IsKind(wrapped, forgeerr.KindPackagingDefect))
	assert.False(t, forgeerr.IsKind(wrapped, forgeerr.KindFetchFailed))
}

func TestKindOfForeignError(t *testing.T) {
	assert.Equal(t, forgeerr.Kind(""), forgeerr.KindOf(errors.New("plain")))
	assert.Equal(t, forgeerr.Kind(""), forgeerr.KindOf(nil))
}
