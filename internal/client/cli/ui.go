package cli

import (
	"bufio"
	"fmt"
	"io"
	"sync"
)

// terminalUI implements pages.UI on the terminal. Votes finish in the
// background, so writes are serialized.
type terminalUI struct {
	mu  sync.Mutex
	in  *bufio.Reader
	out io.Writer
}

func (u *terminalUI) Alert(msg string) {
	u.printf("! %s\n", msg)
}

func (u *terminalUI) Notify(msg string) {
	u.printf("* %s\n", msg)
}

func (u *terminalUI) Confirm(msg string) bool {
	ok, err := GetYesNo(u.in, msg, false, u)
	return err == nil && ok
}

func (u *terminalUI) Write(p []byte) (int, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.out.Write(p)
}

func (u *terminalUI) printf(format string, args ...any) {
	fmt.Fprintf(u, format, args...)
}
