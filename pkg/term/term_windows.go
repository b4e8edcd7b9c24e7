//go:build windows

package term

import (
	"os"

	"golang.org/x/sys/windows"
)

func enableVirtualTerminal() error {
	handle := windows.Handle(os.Stdout.Fd())

	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return &PlatformEnableError{Err: err}
	}
	if mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0 {
		return nil
	}
	if err := windows.SetConsoleMode(handle, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING); err != nil {
		return &PlatformEnableError{Err: err}
	}
	return nil
}
