// Package file provides a file-based DataFetcher implementation for the config package.
//
// The file is read once at construction time and cached, so every call to Fetch
// returns the same bytes for the lifetime of the Fetcher, even if the file changes
// on disk. Files larger than DefaultMaxSize are rejected unless WithMaxSize says
// otherwise.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("/etc/app/app.conf")()
//	if err != nil {
//	    // file not found, permission denied, path is a directory, file too large
//	}
//	data, err := fetcher.Fetch()
//
// Use errors.Is(err, file.ErrPathIsDirectory) or errors.Is(err, file.ErrFileTooLarge)
// to tell the failures apart.
package file
