// Package config defines process configuration and its loading order.
//
// Precedence (low -> high): defaults, optional YAML file named by
// TAGGER_CONFIG, then TAGGER_-prefixed environment variables.
package config

// Config contains process configuration.
type Config struct {
	// DBPath is the SQLite database file. Empty means the per-user default
	// under ~/.local/share/tagging-football-cli.
	DBPath string `koanf:"db_path"`

	// MpvSocket is the Unix socket path for mpv IPC. Empty means the mpv
	// package default.
	MpvSocket string `koanf:"mpv_socket"`

	// StepSize is the seek step in seconds for the skip keys.
	StepSize float64 `koanf:"step_size"`

	// VideoExtensions constrains the match form's file picker.
	VideoExtensions []string `koanf:"video_extensions"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		StepSize:        5,
		VideoExtensions: []string{"mp4", "mkv", "avi", "mov", "webm"},
	}
}
