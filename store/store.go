// Package store keeps the palette on disk between runs.
//
// The palette controller never persists by itself; the store is plugged in as its
// change listener by whoever owns the controller.
package store

import (
	"fmt"

	"github.com/metafates/gache"
	"github.com/spf13/viper"
	"github.com/swatch-cli/swatch/filesystem"
	"github.com/swatch-cli/swatch/key"
	"github.com/swatch-cli/swatch/log"
	"github.com/swatch-cli/swatch/palette"
	"github.com/swatch-cli/swatch/where"
)

var cacher = gache.New[[]palette.Entry](
	&gache.Options{
		Path:       where.Palette(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Load returns the saved palette. Nothing saved yet yields (nil, nil).
func Load() ([]palette.Entry, error) {
	saved, expired, err := cacher.Get()
	if err != nil {
		return nil, fmt.Errorf("load palette: %w", err)
	}
	if expired {
		return nil, nil
	}
	return saved, nil
}

// Save overwrites the saved palette.
func Save(colors []palette.Entry) error {
	if colors == nil {
		colors = []palette.Entry{}
	}
	if err := cacher.Set(colors); err != nil {
		return fmt.Errorf("save palette: %w", err)
	}
	log.Debugf("saved %d colors", len(colors))
	return nil
}

// Clear forgets the saved palette.
func Clear() error {
	if err := cacher.Set(nil); err != nil {
		return fmt.Errorf("clear palette: %w", err)
	}
	return nil
}

// Listener adapts Save to palette.Options.OnChange. Failures go to onErr, which may be nil.
func Listener(onErr func(error)) func([]palette.Entry) {
	return func(colors []palette.Entry) {
		if err := Save(colors); err != nil {
			log.Error(err)
			if onErr != nil {
				onErr(err)
			}
		}
	}
}

// Initial returns the saved palette when persist is set and one exists,
// otherwise a single entry built from the configured seed.
func Initial(persist bool) ([]palette.Entry, error) {
	if persist {
		saved, err := Load()
		if err != nil {
			return nil, err
		}
		if saved != nil {
			log.Infof("loaded %d saved colors", len(saved))
			return saved, nil
		}
	}

	return []palette.Entry{{
		Name:  viper.GetString(key.PaletteSeedName),
		Value: viper.GetString(key.PaletteSeedValue),
	}}, nil
}
