// Package ingest downloads and unpacks PDF set archives into the set directory.
package ingest

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the public archive server for released PDF sets.
const DefaultBaseURL = "https://lhapdfsets.web.cern.ch/current/"

// DefaultMaxArchiveBytes caps how much of a response body is consumed.
// Archives past this point indicate a misbehaving server, not a bigger set.
const DefaultMaxArchiveBytes = 1 << 30

const archiveSuffix = ".tar.gz"

// DefaultSets is the built-in list installed when the caller names none.
var DefaultSets = []string{"CT14lo", "CT14nlo"}

// Result reports one successfully installed set. Dest is the set's own
// directory under the destination, not the destination itself.
type Result struct {
	Name string
	Dest string
}

// Installer provisions PDF sets into a destination directory, one name at a
// time. Names mapped in Mirrors are cloned from a git repository; all others
// are downloaded from BaseURL as gzip tarballs.
type Installer struct {
	// BaseURL is the archive server prefix. Defaults to DefaultBaseURL.
	BaseURL string

	// MaxArchiveBytes bounds the response body size. Defaults to
	// DefaultMaxArchiveBytes.
	MaxArchiveBytes int64

	// Client is the HTTP client for archive downloads. Defaults to a client
	// with a 5-minute timeout.
	Client *http.Client

	// Mirrors maps set names to git repository URLs.
	Mirrors map[string]string

	// Log receives per-set progress.
	Log zerolog.Logger
}

// NewInstaller creates an Installer with default transport settings.
func NewInstaller(log zerolog.Logger) *Installer {
	return &Installer{
		BaseURL:         DefaultBaseURL,
		MaxArchiveBytes: DefaultMaxArchiveBytes,
		Client:          &http.Client{Timeout: 5 * time.Minute},
		Log:             log,
	}
}

// Install provisions each named set into destDir, strictly in order.
// The first failure aborts the whole run: a partially provisioned set
// directory is a worse end state than none, and a rerun is cheap because
// installation is idempotent. Already-installed results are returned
// alongside the error.
func (in *Installer) Install(names []string, destDir string) ([]Result, error) {
	var results []Result

	for _, name := range names {
		var err error
		if gitURL, ok := in.Mirrors[name]; ok {
			err = in.fetchMirror(name, gitURL, destDir)
		} else {
			err = in.fetchArchive(name, destDir)
		}
		if err != nil {
			return results, fmt.Errorf("installing %s: %w", name, err)
		}

		dest := filepath.Join(destDir, name)
		in.Log.Info().Str("set", name).Str("dest", dest).Msg("installed")
		results = append(results, Result{Name: name, Dest: dest})
	}

	return results, nil
}

// URLFor returns the archive URL for a set name.
func (in *Installer) URLFor(name string) string {
	base := in.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return base + name + archiveSuffix
}

func (in *Installer) client() *http.Client {
	if in.Client != nil {
		return in.Client
	}
	return http.DefaultClient
}

func (in *Installer) maxBytes() int64 {
	if in.MaxArchiveBytes > 0 {
		return in.MaxArchiveBytes
	}
	return DefaultMaxArchiveBytes
}
