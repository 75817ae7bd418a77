// Package forgeerr defines the error taxonomy for pdfforge.
package forgeerr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure by who has to act on it: the operator
// (configuration), the environment (filesystem), the tool's own
// distribution (packaging), the network, or the archive format.
type Kind string

const (
	KindInvalidDataDir        Kind = "InvalidDataDir"
	KindDefaultDirUnavailable Kind = "DefaultDirUnavailable"
	KindSetDirUnavailable     Kind = "SetDirUnavailable"
	KindBootstrapProbe        Kind = "BootstrapProbeError"
	KindPackagingDefect       Kind = "PackagingDefect"
	KindFetchFailed           Kind = "FetchFailed"
	KindResponseTooLarge      Kind = "ResponseTooLarge"
	KindDecompressionFailed   Kind = "DecompressionFailed"
	KindUnsafeArchiveEntry    Kind = "UnsafeArchiveEntry"
)

// Error carries the failure class, the path, set name, or URL involved,
// and the proximate cause.
type Error struct {
	ErrKind Kind
	Subject string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.ErrKind, e.Subject, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.ErrKind, e.Subject)
}

func (e *Error) Kind() Kind {
	return e.ErrKind
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an Error of the given kind.
func New(kind Kind, subject string, cause error) *Error {
	return &Error{ErrKind: kind, Subject: subject, Cause: cause}
}

// InvalidDataDir reports an unusable operator-supplied data directory.
func InvalidDataDir(path string, cause error) *Error {
	return New(KindInvalidDataDir, path, cause)
}

// DefaultDirUnavailable reports that the default data root could not be created.
func DefaultDirUnavailable(path string, cause error) *Error {
	return New(KindDefaultDirUnavailable, path, cause)
}

// SetDirUnavailable reports that the set directory could not be created or opened.
func SetDirUnavailable(path string, cause error) *Error {
	return New(KindSetDirUnavailable, path, cause)
}

// BootstrapProbe reports a bootstrap-file existence probe that failed for a
// reason other than the file being absent.
func BootstrapProbe(path string, cause error) *Error {
	return New(KindBootstrapProbe, path, cause)
}

// PackagingDefect reports a broken tool distribution: a bundled template is
// missing, unreadable, or could not be installed.
func PackagingDefect(path string, cause error) *Error {
	return New(KindPackagingDefect, path, cause)
}

// FetchFailed reports an unreachable remote or a non-success response.
func FetchFailed(url string, cause error) *Error {
	return New(KindFetchFailed, url, cause)
}

// ResponseTooLarge reports a response body exceeding the configured cap.
func ResponseTooLarge(url string, cause error) *Error {
	return New(KindResponseTooLarge, url, cause)
}

// DecompressionFailed reports malformed gzip or tar content.
func DecompressionFailed(url string, cause error) *Error {
	return New(KindDecompressionFailed, url, cause)
}

// UnsafeArchiveEntry reports an archive entry that would write outside the
// destination directory.
func UnsafeArchiveEntry(entry string) *Error {
	return New(KindUnsafeArchiveEntry, entry, nil)
}

// KindOf returns the kind of err, or "" if err is not a forgeerr Error.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.ErrKind
	}
	return ""
}

// IsKind reports whether err is (or wraps) a forgeerr Error of the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
