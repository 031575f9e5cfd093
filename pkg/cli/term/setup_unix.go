//go:build linux || solaris || darwin || dragonfly || freebsd || netbsd || openbsd

package term

import (
	"fmt"
	"os"
	"sync"

	"src.rell.sh/pkg/sys/eunix"
)

func setup(in, _ *os.File) (func() error, error) {
	// On Unix, use input file for changing termios. All fds pointing to the
	// same terminal are equivalent.

	fd := int(in.Fd())
	term, err := eunix.TermiosForFd(fd)
	if err != nil {
		return nil, fmt.Errorf("can't get terminal attribute: %s", err)
	}

	savedTermios := term.Copy()

	term.SetICanon(false)
	term.SetEcho(false)
	term.SetVMin(1)
	term.SetVTime(0)

	// Enforcing crnl translation on readline. Assuming user won't set
	// inlcr or -onlcr, otherwise we have to hardcode all of them here.
	term.SetICRNL(true)

	err = term.ApplyToFd(fd)
	if err != nil {
		return nil, fmt.Errorf("can't set up terminal attribute: %s", err)
	}

	var once sync.Once
	return func() error {
		var err error
		once.Do(func() { err = savedTermios.ApplyToFd(fd) })
		return err
	}, nil
}
