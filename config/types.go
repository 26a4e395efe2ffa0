package config

import "fmt"

// Config file keys. The file is dotenv formatted, one KEY=value per line.
const (
	KeyBaseURL    = "THUMBOR_BASE_URL"
	KeySigningKey = "THUMBOR_KEY"
	KeyWidth      = "WIDTH"
	KeyHeight     = "HEIGHT"
	KeySmart      = "SMART"
	KeyUnsafe     = "UNSAFE"
	KeyCopy       = "COPY"
	KeyLogFile    = "LOG_FILE"
)

// Built-in defaults, applied when neither a flag nor a config file key
// provides a value.
const (
	DefaultWidth  = 800
	DefaultHeight = 0
	DefaultSmart  = true
	DefaultUnsafe = false
	DefaultCopy   = false
)

// Options controls where the config file is loaded from.
type Options struct {
	// Path is an explicit config file path. Empty resolves the default
	// location under the user config directory.
	Path string
}

// Settings holds the fully resolved configuration for one run: config
// file values merged with CLI flags and built-in defaults.
type Settings struct {
	BaseURL    string
	SigningKey string
	Width      int
	Height     int
	Smart      bool
	Unsafe     bool
	Copy       bool
	LogFile    string
}

// String renders the settings for debug logging with the signing key
// redacted.
func (s *Settings) String() string {
	key := "(unset)"
	if s.SigningKey != "" {
		key = "(redacted)"
	}
	return fmt.Sprintf("base_url=%s signing_key=%s width=%d height=%d smart=%t unsafe=%t copy=%t",
		s.BaseURL, key, s.Width, s.Height, s.Smart, s.Unsafe, s.Copy)
}
