package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	apperrors "github.com/sudacode/thumburl/errors"
)

// appDir is the directory under the user config home holding the config
// file, kept compatible with existing installs.
const (
	appDir   = "thumbor-url-generator"
	fileName = "config"
)

// flagKeys are the viper keys that have a CLI flag of the same name bound
// to them. A flag the user actually set wins over the config file;
// otherwise the file value wins over the flag's default.
var flagKeys = []string{"width", "height", "smart", "unsafe", "copy"}

// DefaultPath resolves the default config file location:
// $XDG_CONFIG_HOME/thumbor-url-generator/config, falling back to
// $HOME/.config/thumbor-url-generator/config.
func DefaultPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appDir, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", apperrors.NewConfiguration("cannot resolve config directory").WithInnerError(err)
	}
	return filepath.Join(home, ".config", appDir, fileName), nil
}

// Load reads the config file and resolves every setting with the
// precedence: explicit CLI flag > config file key > built-in default.
// flags may be nil when no flag set participates (tests, library use).
func Load(opts Options, flags *pflag.FlagSet) (*Settings, error) {
	path := opts.Path
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return nil, err
		}
	}

	if info, err := os.Stat(path); err != nil {
		return nil, apperrors.NewConfigFile(path, err)
	} else if info.IsDir() {
		return nil, apperrors.NewConfigFile(path, nil).WithMessage("config path is a directory: " + path)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// viper keys are case-insensitive, so the file's WIDTH and the bound
	// --width flag land on the same key.
	v.SetDefault(KeyWidth, DefaultWidth)
	v.SetDefault(KeyHeight, DefaultHeight)
	v.SetDefault(KeySmart, DefaultSmart)
	v.SetDefault(KeyUnsafe, DefaultUnsafe)
	v.SetDefault(KeyCopy, DefaultCopy)

	if flags != nil {
		for _, key := range flagKeys {
			if flag := flags.Lookup(key); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, apperrors.NewConfiguration("cannot bind flag " + key).WithInnerError(err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, apperrors.NewConfigFile(path, err)
	}

	settings := &Settings{
		BaseURL:    strings.TrimSpace(v.GetString(KeyBaseURL)),
		SigningKey: v.GetString(KeySigningKey),
		Width:      v.GetInt(KeyWidth),
		Height:     v.GetInt(KeyHeight),
		Smart:      v.GetBool(KeySmart),
		Unsafe:     v.GetBool(KeyUnsafe),
		Copy:       v.GetBool(KeyCopy),
		LogFile:    v.GetString(KeyLogFile),
	}

	if settings.BaseURL == "" {
		return nil, apperrors.NewMissingKey(KeyBaseURL)
	}

	return settings, nil
}
