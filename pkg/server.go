package pkg

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"time"

	"github.com/creack/pty"
	"github.com/gliderlabs/ssh"
	"github.com/google/uuid"
	"github.com/qnkhuat/queensterm/pkg/board"
	gossh "golang.org/x/crypto/ssh"
)

const (
	ServerIdleTimeout = 5 * time.Minute
	SshPort           = ":2222"
)

// Server gives every ssh session its own game, running Binary in a pseudo-terminal.
type Server struct {
	*ssh.Server
	Binary string
	Args   []string
}

func NewServer(addr, hostKeyPath, binary string, args ...string) (*Server, error) {
	signer, err := LoadHostKey(hostKeyPath)
	if err != nil {
		return nil, err
	}

	server := &Server{
		Binary: binary,
		Args:   args,
	}
	server.Server = &ssh.Server{
		Addr:        addr,
		IdleTimeout: ServerIdleTimeout,
		Handler:     server.handle,
	}
	server.AddHostKey(signer)

	return server, nil
}

// sessionArgs turns the words of an ssh command line into game flags. Only game
// settings are accepted; anything touching the server's files is refused.
func sessionArgs(words []string) ([]string, error) {
	fs := flag.NewFlagSet("session", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Int64("seed", 0, "")
	fs.Bool("petnames", false, "")
	fs.Bool("debug", false, "")
	fs.Bool("random-spawn", false, "")
	fs.String("theme", "", "")
	columns := fs.Int("columns", board.DefaultSize, "")
	rows := fs.Int("rows", board.DefaultSize, "")

	if err := fs.Parse(words); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments %q", fs.Args())
	}
	if *columns <= 0 || *rows <= 0 || *columns > board.MaxSize || *rows > board.MaxSize {
		return nil, fmt.Errorf("board size must be between 1 and %d", board.MaxSize)
	}

	var args []string
	fs.Visit(func(f *flag.Flag) {
		args = append(args, fmt.Sprintf("-%s=%s", f.Name, f.Value))
	})
	return args, nil
}

// command builds the game process for a session. Session flags come after the
// server's own, so they take precedence.
func (s *Server) command(ctx context.Context, words []string, term string) (*exec.Cmd, error) {
	extra, err := sessionArgs(words)
	if err != nil {
		return nil, err
	}

	args := append(append([]string{}, s.Args...), extra...)
	cmd := exec.CommandContext(ctx, s.Binary, args...)
	cmd.Env = append(os.Environ(), fmt.Sprintf("TERM=%s", term))
	return cmd, nil
}

func (s *Server) handle(sess ssh.Session) {
	id := uuid.New()
	log.Printf("session %s: %s connected from %s", id, sess.User(), sess.RemoteAddr())
	defer log.Printf("session %s: closed", id)

	ptyReq, winCh, isPty := sess.Pty()
	if !isPty {
		io.WriteString(sess, "non-interactive terminals are not supported\n")
		sess.Exit(1)
		return
	}

	cmdCtx, cancelCmd := context.WithCancel(sess.Context())
	defer cancelCmd()

	cmd, err := s.command(cmdCtx, sess.Command(), ptyReq.Term)
	if err != nil {
		log.Printf("session %s: refused arguments %q: %s", id, sess.Command(), err)
		io.WriteString(sess, fmt.Sprintf("invalid arguments: %s\n", err))
		sess.Exit(2)
		return
	}

	f, err := pty.StartWithSize(cmd, winsize(ptyReq.Window))
	if err != nil {
		log.Printf("session %s: failed to start game: %s", id, err)
		io.WriteString(sess, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))
		sess.Exit(1)
		return
	}
	defer f.Close()

	go func() {
		for win := range winCh {
			if err := pty.Setsize(f, winsize(win)); err != nil {
				log.Printf("session %s: failed to resize: %s", id, err)
			}
		}
	}()

	go func() {
		io.Copy(f, sess)
	}()
	io.Copy(sess, f)

	f.Close()
	if err := cmd.Wait(); err != nil {
		log.Printf("session %s: game exited: %s", id, err)
		sess.Exit(1)
		return
	}
	sess.Exit(0)
}

func winsize(w ssh.Window) *pty.Winsize {
	return &pty.Winsize{Rows: uint16(w.Height), Cols: uint16(w.Width)}
}

// LoadHostKey reads a PEM encoded private key from path, generating and saving
// an ed25519 key when the file does not exist yet.
func LoadHostKey(path string) (gossh.Signer, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return gossh.ParsePrivateKey(data)
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}
	block, err := gossh.MarshalPrivateKey(key, "")
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, pem.EncodeToMemory(block), 0600); err != nil {
		return nil, err
	}
	log.Printf("generated host key %s", path)

	return gossh.NewSignerFromKey(key)
}
