package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/qnkhuat/blockterm/pkg"
	"github.com/qnkhuat/blockterm/pkg/config"
	"github.com/qnkhuat/blockterm/pkg/event"
	"github.com/qnkhuat/blockterm/pkg/game"
	"github.com/qnkhuat/blockterm/pkg/gui"
	"github.com/qnkhuat/blockterm/pkg/mino"
)

const EventQueueSize = 64

func fatalf(format string, v ...interface{}) {
	color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "blockterm: "+format+"\n", v...)
	os.Exit(1)
}

// readStartingLevel reads one line and parses it as a starting level.
// Anything that is not a playable level starts at 0.
func readStartingLevel(r io.Reader) int {
	line, _ := bufio.NewReader(r).ReadString('\n')

	level, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0
	}

	return game.NormalizeStartingLevel(level)
}

func checkTerminalSize(logger *log.Logger) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		logger.Printf("Failed to get terminal size: %s", err)
		return
	}

	needW, needH := gui.Width(mino.DefaultWidth), gui.Height(mino.DefaultHeight)
	if w < needW || h < needH {
		logger.Printf("Terminal is %dx%d, the game needs %dx%d", w, h, needW, needH)
	}
}

func main() {
	logPath := flag.String("log", "./blockterm.log", "path to log file")
	configDir := flag.String("config", "", "directory with rotation, speed, score and color tables")
	highScorePath := flag.String("highscore", config.DefaultHighScorePath(), "path to high score file")
	flag.Parse()

	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if !tty {
		fatalf("non-interactive terminals are not supported")
	}

	logger := pkg.InitLog(*logPath, "CLIENT: ")

	cfg, err := config.Load(*configDir)
	if err != nil {
		fatalf("%s", err)
	}

	store := &config.HighScoreFile{Path: *highScorePath}
	highScore, err := store.Load()
	if err != nil {
		fatalf("%s", err)
	}

	checkTerminalSize(logger)

	color.New(color.FgCyan, color.Bold).Print("Starting level: ")
	startingLevel := readStartingLevel(os.Stdin)

	logger.Printf("New game: starting level %d, high score %d", startingLevel, highScore)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	session := game.NewSession(cfg, startingLevel, highScore, rng, store, logger)

	events := make(chan event.Input, EventQueueSize)
	g := gui.NewGUI(events, gui.ThemeBasic)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	go func() { // Down when receive killed signal
		<-sigc

		cancel()
	}()

	done := make(chan bool)
	go func() {
		if err := g.Run(); err != nil {
			logger.Printf("Failed to run application: %s", err)
		}

		cancel()
		done <- true
	}()

	err = game.Loop(ctx, session, events, g, game.NewTicker(game.TickRate))
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Printf("Game loop stopped: %s", err)
	}

	g.Stop()
	<-done

	fmt.Printf("High score: %d\n", session.HighScore())
}
