package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/qnkhuat/queensterm/pkg"
	"github.com/qnkhuat/queensterm/pkg/game"
	"github.com/qnkhuat/queensterm/pkg/gui"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var (
		logPath   = flag.String("log", "", "path to log file, logs are discarded when empty")
		columns   = flag.Int("columns", game.DefaultConfig().Columns, "number of board columns")
		rows      = flag.Int("rows", game.DefaultConfig().Rows, "number of board rows")
		tick      = flag.Duration("tick", game.DefaultTurnInterval, "time between turns")
		fps       = flag.Int("fps", int(time.Second/game.DefaultFrameInterval), "frames drawn per second")
		seed      = flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
		debug     = flag.Bool("debug", false, "highlight the available moves")
		petnames  = flag.Bool("petnames", false, "give the players random names")
		spawn     = flag.Bool("random-spawn", false, "start the queens on random cells")
		plain     = flag.Bool("plain", false, "print frames as text instead of the interactive view")
		themeName = flag.String("theme", gui.ThemeBasic.Name, "color theme of the interactive view")
	)
	flag.Parse()

	closer, err := pkg.InitLog(*logPath, "QUEENS: ")
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer closer.Close()

	if *fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", *fps)
	}

	g, err := game.New(game.Config{
		Columns:       *columns,
		Rows:          *rows,
		TurnInterval:  *tick,
		FrameInterval: time.Second / time.Duration(*fps),
		Seed:          *seed,
		Debug:         *debug,
		RandomNames:   *petnames,
		RandomSpawn:   *spawn,
	})
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tty := isatty.IsTerminal(os.Stdout.Fd())
	if *plain || !tty {
		return runPlain(ctx, g, tty)
	}

	theme, err := gui.ImportThemes(*themeName, gui.Themes)
	if err != nil {
		return err
	}
	return runTable(ctx, g, theme)
}

func runPlain(ctx context.Context, g *game.Game, tty bool) error {
	p := gui.NewPlain(os.Stdout)
	if tty {
		p.Clear = true
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			p.Width = w
		}
	}

	err := g.Run(ctx, p)
	if errors.Is(err, context.Canceled) {
		log.Println("Interrupted")
		return nil
	}
	return err
}

func runTable(ctx context.Context, g *game.Game, theme gui.Theme) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	view := gui.NewTableView(theme)

	errc := make(chan error, 1)
	go func() {
		err := g.Run(ctx, view)
		if err != nil && !errors.Is(err, context.Canceled) {
			view.Stop()
		}
		errc <- err
	}()
	go func() {
		<-ctx.Done()
		view.Stop()
	}()

	// The view stays up after the game is over until the user quits
	if err := view.Run(); err != nil {
		return err
	}
	cancel()

	if err := <-errc; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Println("Bye")
	return nil
}
