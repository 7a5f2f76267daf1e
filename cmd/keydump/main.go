// keydump puts the terminal in raw mode and prints every key event it
// recognizes, one per line. Useful to check what escape sequences a
// terminal actually emits. Quit with Ctrl+C or 'q'.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	dw "github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/mic006/termui"
	"github.com/mic006/termui/input/event"
	"github.com/mic006/termui/logger"
)

const nameColumn = 24

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "keydump:", err)
		os.Exit(1)
	}
}

func run() error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	ui, err := termui.NewTermUI(termui.Options{
		Logger: logger.New(logger.Options{
			Buffer: os.Stderr,
			Level:  logger.ErrorLevel,
		}),
	})
	if err != nil {
		return err
	}

	// resize notifications come in as a signal, not as tty bytes
	winch := make(chan os.Signal, 1)
	signal.Notify(winch, syscall.SIGWINCH)
	defer signal.Stop(winch)
	go func() {
		for range winch {
			printEvent(event.TermResize)
		}
	}()

	fmt.Print("press keys, Ctrl+C or 'q' to quit\r\n")
	buf := make([]byte, 64)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		events, err := ui.ProcessInput(buf[:n])
		if err != nil {
			return err
		}
		for _, ev := range events {
			printEvent(ev)
			if ev == event.CtrlC || ev == event.FromRune('q') {
				return nil
			}
		}
	}
}

func printEvent(ev event.Event) {
	name := ev.String()
	// pad with runewidth so quoted wide characters still line up
	pad := max(nameColumn-dw.StringWidth(name), 1)
	fmt.Printf("%s%s0x%08x\r\n", name, strings.Repeat(" ", pad), uint32(ev))
}
