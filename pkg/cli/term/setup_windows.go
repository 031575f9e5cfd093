package term

import (
	"os"
	"sync"

	"golang.org/x/sys/windows"
)

const (
	clearInMode = windows.ENABLE_LINE_INPUT | windows.ENABLE_ECHO_INPUT
	setOutMode  = windows.ENABLE_PROCESSED_OUTPUT |
		windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING
)

func setup(in, out *os.File) (func() error, error) {
	hIn := windows.Handle(in.Fd())
	hOut := windows.Handle(out.Fd())

	var oldInMode, oldOutMode uint32
	err := windows.GetConsoleMode(hIn, &oldInMode)
	if err != nil {
		return nil, err
	}
	err = windows.GetConsoleMode(hOut, &oldOutMode)
	if err != nil {
		return nil, err
	}

	err = windows.SetConsoleMode(hIn, oldInMode&^clearInMode)
	if err != nil {
		return nil, err
	}
	// Failing to enable VT processing only affects colours.
	windows.SetConsoleMode(hOut, oldOutMode|setOutMode)

	var once sync.Once
	return func() error {
		var err error
		once.Do(func() {
			errOut := windows.SetConsoleMode(hOut, oldOutMode)
			err = windows.SetConsoleMode(hIn, oldInMode)
			if err == nil {
				err = errOut
			}
		})
		return err
	}, nil
}
