//go:build !windows

package term

// Unix terminal emulators interpret SGR sequences natively.
func enableVirtualTerminal() error {
	return nil
}
