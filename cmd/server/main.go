package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gliderlabs/ssh"
	"github.com/qnkhuat/queensterm/pkg"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var (
		addr    = flag.String("addr", pkg.SshPort, "address to listen on")
		hostKey = flag.String("hostkey", "./host_key", "path to the host key, generated when missing")
		binary  = flag.String("bin", "", "path to the queensterm binary, defaults to the one next to the server")
		idle    = flag.Duration("idle", pkg.ServerIdleTimeout, "close sessions idle for this long")
		logPath = flag.String("log", "./log", "path to log file")
	)
	flag.Parse()

	closer, err := pkg.InitLog(*logPath, "SERVER: ")
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer closer.Close()

	if *binary == "" {
		exe, err := os.Executable()
		if err != nil {
			return err
		}
		*binary = filepath.Join(filepath.Dir(exe), "queensterm")
	}

	s, err := pkg.NewServer(*addr, *hostKey, *binary, flag.Args()...)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	s.IdleTimeout = *idle

	errc := make(chan error, 1)
	go func() {
		log.Printf("Listening at %s", *addr)
		errc <- s.ListenAndServe()
	}()

	// Wait for terminate signal
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errc:
		return err
	case sig := <-sigc:
		log.Printf("Received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return err
	}
	return nil
}
