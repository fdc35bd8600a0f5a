//go:build linux
// +build linux

package clipboard

import (
	"os"
	"os/exec"
	"strings"

	atotto "github.com/atotto/clipboard"
)

// Copy prefers wl-copy on Wayland sessions, then the portable clipboard
// library (xclip/xsel on X11), then OSC52 as a last resort for SSH sessions
// with no display at all.
func Copy(text string) error {
	if os.Getenv("WAYLAND_DISPLAY") != "" || os.Getenv("XDG_SESSION_TYPE") == "wayland" {
		if _, err := exec.LookPath("wl-copy"); err == nil {
			cmd := exec.Command("wl-copy")
			cmd.Stdin = strings.NewReader(text)
			if err := cmd.Run(); err == nil {
				return nil
			}
		}
	}

	if err := atotto.WriteAll(text); err == nil {
		return nil
	}

	return copyOSC52(text)
}
