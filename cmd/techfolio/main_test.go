package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/term"

	"github.com/lixenwraith/techfolio/config"
	"github.com/lixenwraith/techfolio/contact"
	"github.com/lixenwraith/techfolio/outbox"
)

// executeCmd runs the root command with args against a config path that does not exist
func executeCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "missing.yml")}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := executeCmd(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if out != "techfolio "+Version+"\n" {
		t.Errorf("output = %q", out)
	}
}

func TestMailtoCmd(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr error
	}{
		{
			name: "explicit recipient",
			args: []string{"--to", "me@site.dev", "--name", "A", "--email", "a@b.com", "--subject", "S", "--message", "M"},
			want: "mailto:me@site.dev?subject=S&body=Name%3A%20A%0AEmail%3A%20a%40b.com%0A%0AM\n",
		},
		{
			name: "profile recipient",
			args: []string{"--name", "A", "--email", "a@b.com", "--subject", "Hi there", "--message", "M"},
			want: "mailto:pravatpatra1997@gmail.com?subject=Hi%20there&body=",
		},
		{
			name:    "missing message",
			args:    []string{"--name", "A", "--email", "a@b.com", "--subject", "S"},
			wantErr: contact.ErrIncomplete,
		},
		{
			name:    "bad email",
			args:    []string{"--name", "A", "--email", "nope", "--subject", "S", "--message", "M"},
			wantErr: contact.ErrBadEmail,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCmd(t, append([]string{"mailto"}, tt.args...)...)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("mailto: %v", err)
			}
			if !strings.HasPrefix(out, tt.want) {
				t.Errorf("output = %q, want prefix %q", out, tt.want)
			}
		})
	}
}

func TestOutboxListCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "outbox.db")
	t.Setenv("TECHFOLIO_OUTBOX_PATH", path)

	out, err := executeCmd(t, "outbox", "list")
	if err != nil {
		t.Fatalf("list empty: %v", err)
	}
	if !strings.Contains(out, "No messages") {
		t.Errorf("empty output = %q", out)
	}

	db, err := outbox.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	_, err = outbox.NewStore(db).Record(context.Background(), outbox.Entry{
		Recipient:   "me@site.dev",
		SenderName:  "Ann",
		SenderEmail: "ann@example.com",
		Subject:     "Collaboration",
		Body:        "Hello",
		Link:        "mailto:me@site.dev",
	})
	db.Close()
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	out, err = executeCmd(t, "outbox", "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, want := range []string{"STATUS", "Collaboration", "Ann <ann@example.com>", "pending"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	out, err = executeCmd(t, "outbox", "list", "--json")
	if err != nil {
		t.Fatalf("list json: %v", err)
	}
	var entries []outbox.Entry
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(entries) != 1 || entries[0].Subject != "Collaboration" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestSnapshotCmd(t *testing.T) {
	out, err := executeCmd(t, "snapshot", "--cols", "80", "--rows", "24", "--frames", "2")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 24 {
		t.Fatalf("lines = %d", len(lines))
	}
	if !strings.Contains(lines[0], "Pravat Patra") {
		t.Errorf("navbar = %q", lines[0])
	}

	if _, err := executeCmd(t, "snapshot", "--cols", "80", "--rows", "24", "--section", "nowhere"); err == nil {
		t.Error("unknown section accepted")
	}
}

func TestContentFlag(t *testing.T) {
	dir := t.TempDir()
	profile := "name: Test User\nroles: [Engineer]\nemail: test@example.com\n"
	if err := os.WriteFile(filepath.Join(dir, "profile.yaml"), []byte(profile), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "sections"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "sections", "01-work.md"), []byte("# Work\n\nThings I made.\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := executeCmd(t, "--content", dir, "snapshot", "--cols", "80", "--rows", "24", "--frames", "1")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if !strings.Contains(out, "Test User") || !strings.Contains(out, "TU") {
		t.Errorf("custom content missing:\n%s", out)
	}

	out, err = executeCmd(t, "--content", dir, "mailto", "--name", "A", "--email", "a@b.com", "--subject", "S", "--message", "M")
	if err != nil {
		t.Fatalf("mailto: %v", err)
	}
	if !strings.HasPrefix(out, "mailto:test@example.com?") {
		t.Errorf("recipient not taken from content: %q", out)
	}
}

func TestInvalidColorFlag(t *testing.T) {
	_, err := executeCmd(t, "--color", "sepia", "snapshot", "--cols", "10", "--rows", "5")
	if err == nil {
		t.Error("invalid color mode accepted")
	}
}

func TestRunRequiresTerminal(t *testing.T) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		t.Skip("stdout is a terminal")
	}
	_, err := executeCmd(t, "run")
	if err == nil || !strings.Contains(err.Error(), "not a terminal") {
		t.Errorf("err = %v", err)
	}
}

func TestProfileMode(t *testing.T) {
	for _, name := range []string{"cpu", "mem", "block", "trace"} {
		if _, err := profileMode(name); err != nil {
			t.Errorf("profileMode(%q): %v", name, err)
		}
	}
	if _, err := profileMode("gpu"); err == nil {
		t.Error("unknown mode accepted")
	}
}

func TestInitCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "techfolio.yml")

	out, err := executeCmd(t, "--config", path, "init")
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if !strings.Contains(out, path) {
		t.Errorf("output = %q", out)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load written config: %v", err)
	}
	if cfg.FrameRate != config.DefaultConfig().FrameRate {
		t.Errorf("frame rate = %d", cfg.FrameRate)
	}

	if _, err := executeCmd(t, "--config", path, "init"); err == nil {
		t.Error("second init overwrote the file")
	}
	if _, err := executeCmd(t, "--config", path, "init", "--force"); err != nil {
		t.Errorf("init --force: %v", err)
	}
}
