package mpv

import (
	"os/exec"

	"github.com/user/tagging-football-cli/deps"
)

// Launch starts mpv paused on the given video file with the IPC socket
// enabled. It checks that mpv is installed first and returns an error with
// an install link if not. The returned *exec.Cmd can be used for cleanup.
func Launch(videoPath, socketPath string) (*exec.Cmd, error) {
	if err := deps.CheckMpv(); err != nil {
		return nil, err
	}
	if socketPath == "" {
		socketPath = DefaultSocketPath
	}

	cmd := exec.Command("mpv",
		"--input-ipc-server="+socketPath,
		"--pause",
		videoPath,
	)

	// Start the process (non-blocking)
	if err := cmd.Start(); err != nil {
		return nil, err
	}

	return cmd, nil
}
