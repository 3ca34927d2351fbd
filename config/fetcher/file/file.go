package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultMaxSize is the largest configuration file a Fetcher reads by default.
const DefaultMaxSize int64 = 16 << 20

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// ErrFileTooLarge is returned when the file exceeds the configured maximum size.
var ErrFileTooLarge = errors.New("file exceeds maximum size")

// Option configures a Fetcher.
type Option func(*options)

type options struct {
	maxSize int64
}

// WithMaxSize sets the largest file size accepted. Non-positive values disable the check.
func WithMaxSize(size int64) Option {
	return func(opts *options) {
		opts.maxSize = size
	}
}

// Fetcher implements config.DataFetcher interface for file-based configuration.
// It reads configuration data from a file at construction time and caches the contents.
type Fetcher struct {
	filepath string
	data     []byte
}

// NewFetcher returns a constructor function that creates a new file-based Fetcher
// with the specified filepath. The file is read at construction time and cached.
// This pattern is Fx-friendly, allowing the DI container to control when instantiation happens.
// Returns an error if the file cannot be read, is too large or if the path points to a directory.
func NewFetcher(fpath string, opts ...Option) func() (*Fetcher, error) {
	settings := options{maxSize: DefaultMaxSize}

	for _, apply := range opts {
		apply(&settings)
	}

	return func() (*Fetcher, error) {
		cleanPath := filepath.Clean(fpath)

		stat, err := os.Stat(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		if settings.maxSize > 0 && stat.Size() > settings.maxSize {
			return nil, fmt.Errorf("path %q (%d bytes): %w", cleanPath, stat.Size(), ErrFileTooLarge)
		}

		data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
		}

		return &Fetcher{
			filepath: cleanPath,
			data:     data,
		}, nil
	}
}

// Path returns the cleaned path the data was read from.
func (f *Fetcher) Path() string {
	return f.filepath
}

// Fetch returns a copy of the cached configuration data that was read at construction time.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}
