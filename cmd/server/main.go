package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anmitsu/go-shlex"

	"github.com/qnkhuat/blockterm/pkg"
)

const ShutdownTimeout = 5 * time.Second

func main() {
	listen := flag.String("listen", pkg.SshPort, "ssh listen address")
	binary := flag.String("blockterm", "blockterm", "path to the blockterm binary")
	gameArgs := flag.String("args", "", "arguments passed to every game, shell quoted")
	hostKeyPath := flag.String("hostkey", "./host_key", "path to the host key, generated when missing")
	logPath := flag.String("log", "./server.log", "path to log file")
	flag.Parse()

	logger := pkg.InitLog(*logPath, "SERVER: ")

	args, err := shlex.Split(*gameArgs, true)
	if err != nil {
		log.Fatalf("invalid -args: %s", err)
	}

	hostKey, err := pkg.LoadHostKey(*hostKeyPath)
	if err != nil {
		log.Fatal(err)
	}

	s := pkg.NewServer(*listen, *binary, args, hostKey, logger)

	go func() {
		logger.Printf("Listening at %s", *listen)
		if err := s.ListenAndServe(); err != nil {
			log.Println(err)
		}
	}()

	// Wait for teminate signal
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	<-sigc

	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		logger.Printf("Failed to shut down: %s", err)
	}
	logger.Println("Server stopped")
}
