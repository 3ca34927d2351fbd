package lcfg

import (
	"fmt"
	"log/slog"

	"github.com/0xalexb/lcfg/config"
	filefetcher "github.com/0xalexb/lcfg/config/fetcher/file"
	"github.com/0xalexb/lcfg/tree"
)

// Load reads the file at path and assembles it into a configuration tree.
// An empty file yields an empty root map. Syntax errors wrap tree.ErrSource.
func Load(path string, opts ...Option) (*tree.Node, error) {
	options := newOptions(opts)

	fetcher, err := filefetcher.NewFetcher(path)()
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", path, err)
	}

	return load(fetcher, fetcher.Path(), options, defaultLogger(options))
}

// LoadBytes assembles data into a configuration tree.
func LoadBytes(data []byte, opts ...Option) (*tree.Node, error) {
	options := newOptions(opts)

	return load(staticFetcher(data), "", options, defaultLogger(options))
}

func load(fetcher config.DataFetcher, source string, options Options, logger *slog.Logger) (*tree.Node, error) {
	parser, err := options.parser(logger)
	if err != nil {
		return nil, err
	}

	root, err := config.TreeProvider("", logger)(parser, fetcher)
	if err != nil {
		if source != "" {
			return nil, fmt.Errorf("loading %q: %w", source, err)
		}

		return nil, err
	}

	logger.Debug("configuration loaded",
		slog.String("source", source),
		slog.Int("leaves", len(root.Leaves())),
		slog.String("root", root.Kind().String()))

	return root, nil
}

func defaultLogger(options Options) *slog.Logger {
	logger := options.logger()
	if logger == nil {
		logger = slog.Default()
	}

	return logger
}

// staticFetcher serves in-memory data as a config.DataFetcher.
type staticFetcher []byte

func (f staticFetcher) Fetch() ([]byte, error) {
	return f, nil
}
