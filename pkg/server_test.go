package pkg

import (
	"bytes"
	"context"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLoadHostKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host_key")

	generated, err := LoadHostKey(path)
	if err != nil {
		t.Fatalf("failed to generate host key: %s", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("host key was not saved: %s", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("host key is readable by others: %s", info.Mode())
	}

	loaded, err := LoadHostKey(path)
	if err != nil {
		t.Fatalf("failed to load host key: %s", err)
	}
	if !bytes.Equal(generated.PublicKey().Marshal(), loaded.PublicKey().Marshal()) {
		t.Error("loaded key differs from the generated one")
	}
}

func TestLoadHostKeyInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host_key")
	if err := os.WriteFile(path, []byte("not a key"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadHostKey(path); err == nil {
		t.Error("wanted error for an invalid key")
	}
}

func TestNewServer(t *testing.T) {
	s, err := NewServer(SshPort, filepath.Join(t.TempDir(), "host_key"), "/bin/queensterm", "-plain")
	if err != nil {
		t.Fatal(err)
	}
	if s.Addr != SshPort || s.IdleTimeout != ServerIdleTimeout || s.Handler == nil {
		t.Errorf("unexpected server %+v", s.Server)
	}
	if s.Binary != "/bin/queensterm" || len(s.Args) != 1 {
		t.Errorf("unexpected command %s %v", s.Binary, s.Args)
	}
}

func TestCommandSessionArgs(t *testing.T) {
	s := &Server{Binary: "/bin/queensterm", Args: []string{"-plain"}}

	for _, tc := range []struct {
		name  string
		words []string
		want  []string
	}{
		{"none", nil, []string{"/bin/queensterm", "-plain"}},
		{"game settings", []string{"-seed", "42", "-debug", "-theme", "night"},
			[]string{"/bin/queensterm", "-plain", "-debug=true", "-seed=42", "-theme=night"}},
		{"board size", []string{"-columns=12", "-rows", "10"},
			[]string{"/bin/queensterm", "-plain", "-columns=12", "-rows=10"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := s.command(context.Background(), tc.words, "xterm")
			if err != nil {
				t.Fatalf("failed to build command: %s", err)
			}
			if !reflect.DeepEqual(cmd.Args, tc.want) {
				t.Errorf("wanted %q got %q", tc.want, cmd.Args)
			}
		})
	}
}

func TestCommandRefusesSessionArgs(t *testing.T) {
	s := &Server{Binary: "/bin/queensterm"}

	for _, words := range [][]string{
		{"-log", "/home/victim/.bashrc"},
		{"-seed", "1", "-log=/tmp/x"},
		{"-bin", "/bin/sh"},
		{"-columns", "100000", "-rows", "100000"},
		{"-rows", "0"},
		{"-seed", "1", "--", "-log", "/tmp/x"},
		{"rm", "-rf"},
	} {
		if cmd, err := s.command(context.Background(), words, "xterm"); err == nil {
			t.Errorf("failed to refuse %q, got %q", words, cmd.Args)
		}
	}
}

func TestInitLog(t *testing.T) {
	defer log.SetOutput(os.Stderr)
	defer log.SetPrefix("")

	path := filepath.Join(t.TempDir(), "log")
	c, err := InitLog(path, "TEST: ")
	if err != nil {
		t.Fatal(err)
	}
	log.Println("hello")
	c.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "TEST: ") || !strings.Contains(string(data), "hello") {
		t.Errorf("unexpected log %q", data)
	}

	if _, err := InitLog(filepath.Join(t.TempDir(), "missing", "log"), ""); err == nil {
		t.Error("wanted error for a missing directory")
	}
}
