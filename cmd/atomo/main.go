package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	gc "github.com/gbin/goncurses"

	"atomo/internal/editor"
	"atomo/internal/term"
)

func main() {
	// Arg 1, if present, is the file name to edit (arg 0 is the program
	// name always). No arg starts an unnamed blank buffer.
	var path string
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	window, err := gc.Init()
	if err != nil {
		fmt.Fprintln(os.Stderr, "atomo:", err)
		os.Exit(1)
	}
	defer gc.End()

	gc.Echo(false)
	gc.CBreak(true)
	gc.StartColor()
	gc.Cursor(1)
	window.Keypad(true)

	screen, err := term.NewScreen(window)
	if err != nil {
		gc.End()
		fmt.Fprintln(os.Stderr, "atomo:", err)
		os.Exit(1)
	}

	ed := editor.New(screen, path)

	// Also cleanup on process exit.
	go func() {
		signalChan := make(chan os.Signal, 1)
		signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
		<-signalChan
		gc.End()
		os.Exit(0)
	}()

	for {
		ev := screen.ReadKey()
		if err := ed.Handle(ev); err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			gc.End()
			fmt.Fprintln(os.Stderr, "atomo:", err)
			os.Exit(1)
		}
	}
}
