//go:build darwin
// +build darwin

package clipboard

import (
	atotto "github.com/atotto/clipboard"
)

// Copy goes through pbcopy via the clipboard library.
func Copy(text string) error {
	return atotto.WriteAll(text)
}
