package config

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/grindlemire/graft"
	"github.com/leashdev/leash/internal/adapters/logger"
	"github.com/leashdev/leash/internal/core/domain"
	"github.com/leashdev/leash/internal/core/ports"
)

// NodeID is the unique identifier for the settings store Graft node.
const NodeID graft.ID = "adapter.settings"

// EnvConfigPath overrides the default settings file location.
const EnvConfigPath = "LEASH_CONFIG"

func init() {
	graft.Register(graft.Node[*Store]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Store, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			path := os.Getenv(EnvConfigPath)
			if path == "" {
				if path, err = DefaultPath(); err != nil {
					return nil, err
				}
			}

			settings, err := Load(path)
			if err != nil {
				// A missing file is not an error: the store starts on
				// defaults and the host pushes settings in later.
				if errors.Is(err, fs.ErrNotExist) {
					log.Warn("no settings file at " + path + ", starting with defaults")
					return NewStore(domain.DefaultSettings()), nil
				}
				return nil, err
			}
			return NewStore(settings), nil
		},
	})
}
