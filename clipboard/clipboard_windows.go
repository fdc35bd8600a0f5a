//go:build windows
// +build windows

package clipboard

import (
	atotto "github.com/atotto/clipboard"
)

// Copy uses the native clipboard API via the clipboard library.
func Copy(text string) error {
	return atotto.WriteAll(text)
}
