// ABOUTME: PTY harness for e2e tests: builds the binary once and drives it through a pseudo-terminal.
// ABOUTME: Provides send/expect/waitExit helpers shared by the inspector tests.

package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

var (
	buildOnce sync.Once
	buildPath string
	buildErr  error
)

// binaryPath builds cmd/terminput once per test run and returns the path.
func binaryPath(t *testing.T) string {
	t.Helper()
	buildOnce.Do(func() {
		dir, err := os.MkdirTemp("", "terminput-e2e")
		if err != nil {
			buildErr = err
			return
		}
		buildPath = filepath.Join(dir, "terminput")
		cmd := exec.Command("go", "build", "-o", buildPath, "github.com/mauromedda/terminput/cmd/terminput")
		cmd.Dir = ".."
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = err
			t.Logf("build output:\n%s", out)
		}
	})
	if buildErr != nil {
		t.Fatalf("building binary: %v", buildErr)
	}
	return buildPath
}

// session is one running inspector under a PTY.
type session struct {
	cmd  *exec.Cmd
	ptmx *os.File

	mu     sync.Mutex
	output strings.Builder

	exited chan error
}

// startInspector launches the inspector in a fresh PTY.
func startInspector(t *testing.T, extraArgs ...string) *session {
	t.Helper()

	args := append([]string{"-no-config"}, extraArgs...)
	cmd := exec.Command(binaryPath(t), args...)
	cmd.Env = append(os.Environ(), "TERM=xterm-256color")

	ptmx, err := pty.Start(cmd)
	if err != nil {
		t.Fatalf("starting PTY: %v", err)
	}

	s := &session{
		cmd:    cmd,
		ptmx:   ptmx,
		exited: make(chan error, 1),
	}

	go func() {
		buf := make([]byte, 4096)
		for {
			n, err := ptmx.Read(buf)
			if n > 0 {
				s.mu.Lock()
				s.output.Write(buf[:n])
				s.mu.Unlock()
			}
			if err != nil {
				return
			}
		}
	}()

	go func() {
		s.exited <- cmd.Wait()
	}()

	return s
}

// send writes raw bytes to the PTY as if typed.
func (s *session) send(t *testing.T, data string) {
	t.Helper()
	if _, err := s.ptmx.WriteString(data); err != nil {
		t.Fatalf("writing to PTY: %v", err)
	}
}

// sendCtrl sends a control chord (e.g. sendCtrl(t, 'd') for Ctrl+D).
func (s *session) sendCtrl(t *testing.T, c byte) {
	t.Helper()
	s.send(t, string(c&0x1f))
}

// expectStringTimeout polls the accumulated output for want.
func (s *session) expectStringTimeout(t *testing.T, want string, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		s.mu.Lock()
		got := s.output.String()
		s.mu.Unlock()
		if strings.Contains(got, want) {
			return
		}
		time.Sleep(25 * time.Millisecond)
	}
	s.mu.Lock()
	got := s.output.String()
	s.mu.Unlock()
	t.Fatalf("timed out waiting for %q; output so far:\n%s", want, got)
}

// waitExit blocks until the process exits or the timeout elapses.
func (s *session) waitExit(t *testing.T, timeout time.Duration) {
	t.Helper()
	select {
	case <-s.exited:
	case <-time.After(timeout):
		t.Fatal("process did not exit in time")
	}
}

// close tears down the session, killing the process if still running.
func (s *session) close() {
	_ = s.ptmx.Close()
	select {
	case <-s.exited:
	default:
		_ = s.cmd.Process.Kill()
		<-s.exited
	}
}
