//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

const (
	ringSize     = 1 << 20 // 1 MiB of scrollback
	pollInterval = 25 * time.Millisecond
)

var binPath = "folio_e2e"

// Keys the scripts send
const (
	KeyEsc     = "\x1b"
	KeyRight   = "\x1b[C"
	KeyLeft    = "\x1b[D"
	KeyHelp    = "?"
	KeyContact = "c"
	KeyQuit    = "q"
)

// CSI, OSC, charset and keypad sequences plus carriage returns
var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|` +
		`(?:\x1b\][^\x07]*\x07)|` +
		`(?:\x1b[\(\)][A-Za-z])|` +
		`(?:\x1b=|\x1b>)|` +
		`\r`,
)

// TUITestFramework runs folio behind a PTY and records everything it draws
type TUITestFramework struct {
	t         *testing.T
	pty       *os.File
	tty       *os.File
	cmd       *exec.Cmd
	workspace string

	mu   sync.Mutex
	buf  []byte
	head int
	full bool
}

func NewTUITest(t *testing.T) *TUITestFramework {
	return &TUITestFramework{t: t, buf: make([]byte, ringSize)}
}

// StartApp launches folio in a 120x40 PTY. Config and log files live in the
// workspace so runs never touch the real user config.
func (tf *TUITestFramework) StartApp(args ...string) error {
	if tf.workspace == "" {
		if _, err := tf.CreateTestWorkspace(); err != nil {
			return err
		}
	}

	argv := append([]string{
		"--log", filepath.Join(tf.workspace, "folio.log"),
		"--config", filepath.Join(tf.workspace, "config.toml"),
	}, args...)
	tf.cmd = exec.Command(binPath, argv...)
	tf.cmd.Dir = tf.workspace
	tf.cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C.UTF-8",
		"HOME="+tf.workspace,
		"FOLIO_E2E_TEST=1",
	)

	ptmx, tty, err := pty.Open()
	if err != nil {
		return fmt.Errorf("open pty: %w", err)
	}
	if err := pty.Setsize(ptmx, &pty.Winsize{Rows: 40, Cols: 120}); err != nil {
		ptmx.Close()
		tty.Close()
		return fmt.Errorf("size pty: %w", err)
	}
	tf.pty, tf.tty = ptmx, tty
	tf.cmd.Stdin, tf.cmd.Stdout, tf.cmd.Stderr = tty, tty, tty

	if err := tf.cmd.Start(); err != nil {
		ptmx.Close()
		tty.Close()
		return fmt.Errorf("start folio: %w", err)
	}

	go tf.capture(ptmx)
	return nil
}

// capture copies PTY output into the ring until the PTY closes
func (tf *TUITestFramework) capture(r *os.File) {
	chunk := make([]byte, 8192)
	for {
		n, err := r.Read(chunk)
		if n > 0 {
			tf.mu.Lock()
			for _, c := range chunk[:n] {
				tf.buf[tf.head] = c
				tf.head = (tf.head + 1) % ringSize
				if tf.head == 0 {
					tf.full = true
				}
			}
			tf.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

func (tf *TUITestFramework) SendKeys(keys string) error {
	tf.t.Helper()
	_, err := tf.pty.Write([]byte(keys))
	return err
}

func (tf *TUITestFramework) Next() error { return tf.SendKeys(KeyRight) }
func (tf *TUITestFramework) Prev() error { return tf.SendKeys(KeyLeft) }
func (tf *TUITestFramework) Help() error { return tf.SendKeys(KeyHelp) }
func (tf *TUITestFramework) Esc() error  { return tf.SendKeys(KeyEsc) }
func (tf *TUITestFramework) Quit() error { return tf.SendKeys(KeyQuit) }

// Ready waits for the marker folio prints on its first frame in e2e mode
func (tf *TUITestFramework) Ready() bool {
	tf.t.Helper()
	return tf.WaitFor(func(s string) bool { return strings.Contains(s, "__READY__") }, 5*time.Second)
}

// SeePlain waits for text to show up in the output with escapes stripped
func (tf *TUITestFramework) SeePlain(text string) bool {
	tf.t.Helper()
	return tf.WaitFor(func(s string) bool {
		return strings.Contains(ansiRe.ReplaceAllString(s, ""), text)
	}, 3*time.Second)
}

// WaitFor polls the raw output until pred holds or timeout passes
func (tf *TUITestFramework) WaitFor(pred func(string) bool, timeout time.Duration) bool {
	tf.t.Helper()
	deadline := time.Now().Add(timeout)
	for !pred(tf.Snapshot()) {
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(pollInterval)
	}
	return true
}

// WaitForE is WaitFor returning an error that carries the output tail
func (tf *TUITestFramework) WaitForE(pred func(string) bool, timeout time.Duration, failMsg string) error {
	tf.t.Helper()
	if tf.WaitFor(pred, timeout) {
		return nil
	}
	return fmt.Errorf("%s\n--- tail ---\n%s", failMsg, tail(tf.SnapshotPlain(), 4096))
}

func (tf *TUITestFramework) Snapshot() string {
	tf.mu.Lock()
	defer tf.mu.Unlock()
	if !tf.full {
		return string(tf.buf[:tf.head])
	}
	return string(tf.buf[tf.head:]) + string(tf.buf[:tf.head])
}

func (tf *TUITestFramework) SnapshotPlain() string {
	return ansiRe.ReplaceAllString(tf.Snapshot(), "")
}

// DumpTailOnFail writes the last n bytes of plain output to a temp file
func (tf *TUITestFramework) DumpTailOnFail(t *testing.T, name string, n int) {
	t.Helper()
	p := filepath.Join(t.TempDir(), name+".txt")
	_ = os.WriteFile(p, []byte(tail(tf.SnapshotPlain(), n)), 0644)
	t.Logf("Saved tail to %s", p)
}

// Cleanup closes the PTY (the child gets SIGHUP) and reaps the process
func (tf *TUITestFramework) Cleanup() {
	for _, f := range []**os.File{&tf.pty, &tf.tty} {
		if *f != nil {
			_ = (*f).Close()
			*f = nil
		}
	}
	if tf.cmd != nil && tf.cmd.Process != nil {
		_ = tf.cmd.Process.Kill()
		_, _ = tf.cmd.Process.Wait()
		tf.cmd = nil
	}
}

func tail(s string, n int) string {
	if len(s) > n {
		return s[len(s)-n:]
	}
	return s
}
