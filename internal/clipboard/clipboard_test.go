// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package clipboard

import (
	"errors"
	"io"
	"strings"
	"testing"
)

// mockExecutor records piped input and returns configured responses.
type mockExecutor struct {
	availableBins map[string]bool
	env           map[string]string
	pipeErr       error

	gotName  string
	gotArgs  []string
	gotStdin string
}

func (m *mockExecutor) LookPath(file string) (string, error) {
	if m.availableBins[file] {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("not found: " + file)
}

func (m *mockExecutor) Getenv(key string) string {
	return m.env[key]
}

func (m *mockExecutor) RunPiped(name string, args []string, stdin io.Reader, stdout io.Writer) error {
	m.gotName = name
	m.gotArgs = args
	data, _ := io.ReadAll(stdin)
	m.gotStdin = string(data)
	return m.pipeErr
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		exec     *mockExecutor
		override string
		wantName string
		wantErr  string
	}{
		{
			name:     "pbcopy preferred",
			exec:     &mockExecutor{availableBins: map[string]bool{"pbcopy": true, "xclip": true}, env: map[string]string{"DISPLAY": ":0"}},
			wantName: "pbcopy",
		},
		{
			name:     "wl-copy needs a wayland display",
			exec:     &mockExecutor{availableBins: map[string]bool{"wl-copy": true, "xsel": true}, env: map[string]string{"DISPLAY": ":0"}},
			wantName: "xsel",
		},
		{
			name:     "wl-copy with wayland",
			exec:     &mockExecutor{availableBins: map[string]bool{"wl-copy": true, "xclip": true}, env: map[string]string{"WAYLAND_DISPLAY": "wayland-0", "DISPLAY": ":0"}},
			wantName: "wl-copy",
		},
		{
			name:     "xclip without display falls through to clip.exe",
			exec:     &mockExecutor{availableBins: map[string]bool{"xclip": true, "clip.exe": true}},
			wantName: "clip.exe",
		},
		{
			name:    "nothing available",
			exec:    &mockExecutor{},
			wantErr: "no clipboard command available",
		},
		{
			name:     "override wins",
			exec:     &mockExecutor{availableBins: map[string]bool{"pbcopy": true, "tee": true}},
			override: "tee '/tmp/clip board.txt'",
			wantName: "tee",
		},
		{
			name:     "override not on PATH",
			exec:     &mockExecutor{availableBins: map[string]bool{"pbcopy": true}},
			override: "my-clip",
			wantErr:  "not found",
		},
		{
			name:     "override with unbalanced quote",
			exec:     &mockExecutor{},
			override: `tee "oops`,
			wantErr:  "parsing clipboard command",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb, err := detect(tt.exec, tt.override)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error %q should contain %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cb.Name() != tt.wantName {
				t.Errorf("got clipboard %q, want %q", cb.Name(), tt.wantName)
			}
		})
	}
}

func TestWrite(t *testing.T) {
	exec := &mockExecutor{availableBins: map[string]bool{"xclip": true}, env: map[string]string{"DISPLAY": ":0"}}
	cb, err := detect(exec, "")
	if err != nil {
		t.Fatal(err)
	}

	if err := cb.Write("$$E = mc^2$$"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exec.gotName != "xclip" {
		t.Errorf("ran %q, want xclip", exec.gotName)
	}
	if strings.Join(exec.gotArgs, " ") != "-selection clipboard" {
		t.Errorf("args = %v", exec.gotArgs)
	}
	if exec.gotStdin != "$$E = mc^2$$" {
		t.Errorf("stdin = %q", exec.gotStdin)
	}
}

func TestWrite_OverrideArgs(t *testing.T) {
	exec := &mockExecutor{availableBins: map[string]bool{"tee": true}}
	cb, err := detect(exec, "tee '/tmp/clip board.txt'")
	if err != nil {
		t.Fatal(err)
	}
	if err := cb.Write("x"); err != nil {
		t.Fatal(err)
	}
	if len(exec.gotArgs) != 1 || exec.gotArgs[0] != "/tmp/clip board.txt" {
		t.Errorf("args = %q, want the quoted path as one argument", exec.gotArgs)
	}
}

func TestWrite_Failure(t *testing.T) {
	exec := &mockExecutor{availableBins: map[string]bool{"pbcopy": true}, pipeErr: errors.New("exit status 1")}
	cb, err := detect(exec, "")
	if err != nil {
		t.Fatal(err)
	}
	err = cb.Write("x")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "pbcopy") {
		t.Errorf("error should name the command, got: %v", err)
	}
}
