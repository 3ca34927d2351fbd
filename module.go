package lcfg

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/0xalexb/lcfg/tree"

	"go.uber.org/fx"
)

// ErrEmptyName is returned when the module name is empty.
var ErrEmptyName = errors.New("module name must not be empty")

// NewModule creates an Fx module that loads the configuration file at path and
// provides its tree as a *tree.Node tagged with name:"<name>".
// Without WithLogger, WithLogLevel or WithLogFormat the module logs through the
// *slog.Logger found in the container, if any.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name, path string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	options := newOptions(opts)

	return fx.Module(name,
		fx.Provide(
			fx.Annotate(
				func(containerLogger *slog.Logger) (*tree.Node, error) {
					logger := options.logger()
					if logger == nil {
						logger = containerLogger
					}

					if logger == nil {
						logger = slog.Default()
					}

					root, err := Load(path, append(opts[:len(opts):len(opts)], WithLogger(logger))...)
					if err != nil {
						logger.Error("failed to load configuration", "name", name, "path", path, "error", err)

						return nil, fmt.Errorf("module %q: %w", name, err)
					}

					logger.Info("configuration tree ready", "name", name, "path", path, "entries", len(root.Leaves()))

					return root, nil
				},
				fx.ParamTags(`optional:"true"`),
				fx.ResultTags(fmt.Sprintf(`name:"%s"`, name)),
			),
		),
	)
}
