package pkg

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"time"

	"github.com/creack/pty"
	petname "github.com/dustinkirkland/golang-petname"
	"github.com/gliderlabs/ssh"
	gossh "golang.org/x/crypto/ssh"
)

const (
	ServerIdleTimeout = 5 * time.Minute
	SshPort           = ":2222"
)

// Server serves one independent game per ssh session by running the game
// binary inside a pseudo-terminal.
type Server struct {
	*ssh.Server

	Binary string
	Args   []string

	logger *log.Logger
}

func NewServer(addr string, binary string, args []string, hostKey gossh.Signer, logger *log.Logger) *Server {
	s := &Server{
		Binary: binary,
		Args:   args,
		logger: logger,
	}

	s.Server = &ssh.Server{
		Addr:        addr,
		IdleTimeout: ServerIdleTimeout,
		Handler:     s.handle,
	}
	s.AddHostKey(hostKey)

	return s
}

func (s *Server) handle(sess ssh.Session) {
	ptyReq, winCh, isPty := sess.Pty()
	if !isPty {
		io.WriteString(sess, "non-interactive terminals are not supported\n")

		sess.Exit(1)
		return
	}

	name := petname.Generate(2, "-")
	s.logger.Printf("Session %s started: user %s from %s", name, sess.User(), sess.RemoteAddr())
	defer s.logger.Printf("Session %s ended", name)

	cmdCtx, cancelCmd := context.WithCancel(sess.Context())
	defer cancelCmd()

	cmd := exec.CommandContext(cmdCtx, s.Binary, s.Args...)
	cmd.Env = append(os.Environ(), fmt.Sprintf("TERM=%s", ptyReq.Term))

	f, err := pty.StartWithSize(cmd, winsize(ptyReq.Window))
	if err != nil {
		s.logger.Printf("Session %s failed to start %s: %s", name, s.Binary, err)
		io.WriteString(sess, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))
		sess.Exit(1)
		return
	}
	defer f.Close()

	go func() {
		for win := range winCh {
			if err := pty.Setsize(f, winsize(win)); err != nil {
				s.logger.Printf("Session %s failed to resize: %s", name, err)
			}
		}
	}()

	go func() {
		io.Copy(f, sess)
	}()
	io.Copy(sess, f)

	cancelCmd()
	cmd.Wait()
}

func winsize(w ssh.Window) *pty.Winsize {
	return &pty.Winsize{Rows: uint16(w.Height), Cols: uint16(w.Width)}
}

// LoadHostKey reads a PEM encoded private key from path. When the file does
// not exist a new ed25519 key is generated and written there.
func LoadHostKey(path string) (gossh.Signer, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		signer, err := gossh.ParsePrivateKey(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse host key %s: %w", path, err)
		}
		return signer, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read host key: %w", err)
	}

	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate host key: %w", err)
	}

	der, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return nil, fmt.Errorf("failed to encode host key: %w", err)
	}

	block := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})
	if err := os.WriteFile(path, block, 0600); err != nil {
		return nil, fmt.Errorf("failed to write host key: %w", err)
	}

	return gossh.NewSignerFromKey(priv)
}
