package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	Create(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context) error
	Update(ctx context.Context) error
	Autosave(ctx context.Context) error
	History(ctx context.Context) error
	EditMap(ctx context.Context) error
	Export(ctx context.Context) error
	Stats(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the QuestMaster CLI.
//
// It reads a line from the provided reader, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on EOF or when the user types "exit" or
// "quit".
//
// Commands:
//
//	help      — show available commands
//	create    — author a new quest (interactive prompts)
//	l, list   — list all quests, newest first
//	show      — show a single quest (interactive ID prompt)
//	update    — change one field of a quest
//	autosave  — persist one field the way a live editor would
//	history   — list a quest's version snapshots
//	map       — edit a quest's map points (add/undo/list)
//	export    — render a quest sheet with a share QR code
//	stats     — show session XP, level and achievements
//	exit|quit — leave the program
//
// Any errors returned by command handlers are reported inline; the loop
// itself never stops on a handler error.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprint(w, "qm> ")
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if errors.Is(err, io.EOF) {
				return
			}
			continue
		}
		cmd := parts[0]

		var cmdErr error
		switch cmd {
		case "help":
			fmt.Fprintln(w, "Available commands: create, (l)ist, show, update, autosave, history, map, export, stats, exit")

		case "create":
			cmdErr = a.Create(ctx)

		case "l", "list":
			cmdErr = a.List(ctx)

		case "show":
			cmdErr = a.Show(ctx)

		case "update":
			cmdErr = a.Update(ctx)

		case "autosave":
			cmdErr = a.Autosave(ctx)

		case "history":
			cmdErr = a.History(ctx)

		case "map":
			cmdErr = a.EditMap(ctx)

		case "export":
			cmdErr = a.Export(ctx)

		case "stats":
			cmdErr = a.Stats(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if cmdErr != nil {
			fmt.Fprintln(w, "Error:", cmdErr)
		}
		if errors.Is(err, io.EOF) {
			return
		}
	}
}
