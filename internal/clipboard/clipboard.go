// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package clipboard copies text to the system clipboard by piping it to a
// platform clipboard command (pbcopy, wl-copy, xclip, xsel, or clip.exe).
package clipboard

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/google/shlex"
)

// Clipboard writes text to a clipboard.
type Clipboard interface {
	// Name returns the command backing the clipboard (e.g. "xclip").
	Name() string

	// Write replaces the clipboard contents with text.
	Write(text string) error
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Getenv(key string) string
	RunPiped(name string, args []string, stdin io.Reader, stdout io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Getenv(key string) string {
	return os.Getenv(key)
}

func (o *osExecutor) RunPiped(name string, args []string, stdin io.Reader, stdout io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%w: %s", err, msg)
		}
		return err
	}
	return nil
}

// command implements Clipboard for one clipboard binary. All backends read
// the text on stdin; they differ only in binary, arguments, and the display
// environment they need.
type command struct {
	bin  string
	args []string
	env  string // variable that must be set for the backend to work, if any
	exec executor
}

func (c *command) Name() string { return c.bin }

func (c *command) Write(text string) error {
	if err := c.exec.RunPiped(c.bin, c.args, strings.NewReader(text), io.Discard); err != nil {
		return fmt.Errorf("copying to clipboard with %s: %w", c.bin, err)
	}
	return nil
}

func (c *command) available() bool {
	if _, err := c.exec.LookPath(c.bin); err != nil {
		return false
	}
	return c.env == "" || c.exec.Getenv(c.env) != ""
}

// candidates lists clipboard commands in the order Detect tries them.
func candidates(exec executor) []*command {
	return []*command{
		{bin: "pbcopy", exec: exec},
		{bin: "wl-copy", env: "WAYLAND_DISPLAY", exec: exec},
		{bin: "xclip", args: []string{"-selection", "clipboard"}, env: "DISPLAY", exec: exec},
		{bin: "xsel", args: []string{"--clipboard", "--input"}, env: "DISPLAY", exec: exec},
		{bin: "clip.exe", exec: exec},
	}
}

var defaultExec = &osExecutor{}

// Detect returns the clipboard to use. A non-empty override is a shell-style
// command line (e.g. "xclip -selection primary") used as-is; otherwise the
// first available platform command wins. Returns an error if none is usable.
func Detect(override string) (Clipboard, error) {
	return detect(defaultExec, override)
}

func detect(exec executor, override string) (Clipboard, error) {
	if strings.TrimSpace(override) != "" {
		return fromCommandLine(exec, override)
	}

	var tried []string
	for _, c := range candidates(exec) {
		if c.available() {
			return c, nil
		}
		tried = append(tried, c.bin)
	}
	return nil, fmt.Errorf("no clipboard command available: tried %s", strings.Join(tried, ", "))
}

func fromCommandLine(exec executor, line string) (Clipboard, error) {
	parts, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("parsing clipboard command %q: %w", line, err)
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty clipboard command")
	}
	c := &command{bin: parts[0], args: parts[1:], exec: exec}
	if _, err := exec.LookPath(c.bin); err != nil {
		return nil, fmt.Errorf("clipboard command %s not found: %w", c.bin, err)
	}
	return c, nil
}
