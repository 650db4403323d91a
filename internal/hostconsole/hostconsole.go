// This file is part of vamiga.
//
// vamiga is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vamiga is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vamiga.  If not, see <https://www.gnu.org/licenses/>.

package hostconsole

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"unsafe"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Geometry is the terminal's dimensions in characters and pixels, kept
// current by a SIGWINCH handler.
type Geometry struct {
	Rows uint16
	Cols uint16
	X    uint16
	Y    uint16
}

// Key values the reference CLI's run loop reacts to. Anything else read
// from the console is ignored.
const (
	KeyPause     = ' '
	KeyWarp      = 'w'
	KeyReset     = 'r'
	KeyQuit      = 'q'
	KeyInterrupt = 3  // ETX, Ctrl-C
	KeySuspend   = 26 // SUB, Ctrl-Z
)

// Console puts the controlling terminal into raw mode for the lifetime of
// a reference CLI session and delivers single keypresses on a channel.
// Grounded on the teacher's easyterm.Terminal: same Tcgetattr/Cfmakeraw/
// Tcsetattr sequence, trimmed to the one mode this package needs (there is
// no cbreak/canonical toggle here, only raw-for-the-session).
type Console struct {
	input  *os.File
	output *os.File

	canonical unix.Termios
	raw       unix.Termios

	Geometry Geometry

	sigStop chan struct{}
	sigDone chan struct{}

	reader *bufio.Reader

	mu sync.Mutex
}

// Open puts input into raw mode and starts the SIGWINCH geometry watcher.
// The caller must call Close before the process exits, or the terminal is
// left in raw mode for the shell that follows.
func Open(input, output *os.File) (*Console, error) {
	if input == nil || output == nil {
		return nil, fmt.Errorf("hostconsole: Open requires non-nil input and output files")
	}

	c := &Console{input: input, output: output, reader: bufio.NewReader(input)}

	if err := termios.Tcgetattr(c.input.Fd(), &c.canonical); err != nil {
		return nil, fmt.Errorf("hostconsole: Tcgetattr: %w", err)
	}
	c.raw = c.canonical
	termios.Cfmakeraw(&c.raw)

	if err := c.updateGeometry(); err != nil {
		return nil, err
	}

	c.sigStop = make(chan struct{})
	c.sigDone = make(chan struct{})
	go func() {
		sigwinch := make(chan os.Signal, 1)
		signal.Notify(sigwinch, syscall.SIGWINCH)
		defer func() {
			signal.Stop(sigwinch)
			c.sigDone <- struct{}{}
		}()
		for {
			select {
			case <-sigwinch:
				_ = c.updateGeometry()
			case <-c.sigStop:
				return
			}
		}
	}()

	if err := termios.Tcsetattr(c.input.Fd(), termios.TCIFLUSH, &c.raw); err != nil {
		close(c.sigStop)
		<-c.sigDone
		return nil, fmt.Errorf("hostconsole: Tcsetattr: %w", err)
	}

	return c, nil
}

// Close restores the terminal's original attributes and stops the
// geometry watcher.
func (c *Console) Close() error {
	c.sigStop <- struct{}{}
	<-c.sigDone
	return termios.Tcsetattr(c.input.Fd(), termios.TCIFLUSH, &c.canonical)
}

func (c *Console) updateGeometry() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _, errno := syscall.Syscall(syscall.SYS_IOCTL, c.output.Fd(), uintptr(syscall.TIOCGWINSZ), uintptr(unsafe.Pointer(&c.Geometry)))
	if errno != 0 {
		return fmt.Errorf("hostconsole: ioctl TIOCGWINSZ: %d", errno)
	}
	return nil
}

// ReadKey blocks for a single keypress and returns it.
func (c *Console) ReadKey() (byte, error) {
	return c.reader.ReadByte()
}

// SuspendProcess sends SIGTSTP to the parent process, for a Ctrl-Z keypress
// read while the terminal is in raw mode (raw mode disables the kernel's
// own ^Z handling).
func SuspendProcess() error {
	p, err := os.FindProcess(os.Getppid())
	if err != nil {
		return fmt.Errorf("hostconsole: no parent process to suspend: %w", err)
	}
	return p.Signal(syscall.SIGTSTP)
}
