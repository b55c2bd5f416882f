package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with
// a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Scan(ctx context.Context) error
	Result(ctx context.Context, scanID string) error
	History(ctx context.Context) error
	DeleteScan(ctx context.Context, scanID string) error
	Feedback(ctx context.Context) error
	Search(ctx context.Context) error
	Brands(ctx context.Context) error
	Favorites(ctx context.Context) error
	ToggleFavorite(ctx context.Context, fragranceID string) error
	Show(ctx context.Context, fragranceID string) error
}

// runREPL starts the read–eval–print loop of the ScentID CLI.
//
// It reads a line, parses the first token as the command, and dispatches to
// methods on 'a'. The loop exits on EOF or when the user types "exit" or
// "quit". Errors returned by command handlers are ignored here; handlers
// print their own errors, keeping the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("scentid %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && !(err == io.EOF && line != "") {
			return
		}
		atEOF := err != nil
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if atEOF {
				return
			}
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: scan, result <id>, history, delete <id>, search, brands, favs, fav <id>, show <id>, feedback, whoami, logout, exit")
			} else {
				printlnFn("Available commands: signup, login, search, brands, show <id>, exit")
			}

		case "signup":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "scan":
			_ = a.Scan(ctx)

		case "result":
			if len(args) == 0 {
				printlnFn("Usage: result <scan-id>")
				continue
			}
			_ = a.Result(ctx, args[0])

		case "history":
			_ = a.History(ctx)

		case "delete":
			if len(args) == 0 {
				printlnFn("Usage: delete <scan-id>")
				continue
			}
			_ = a.DeleteScan(ctx, args[0])

		case "feedback":
			_ = a.Feedback(ctx)

		case "search":
			_ = a.Search(ctx)

		case "brands":
			_ = a.Brands(ctx)

		case "favs", "favorites":
			_ = a.Favorites(ctx)

		case "fav":
			if len(args) == 0 {
				printlnFn("Usage: fav <fragrance-id>")
				continue
			}
			_ = a.ToggleFavorite(ctx, args[0])

		case "show":
			if len(args) == 0 {
				printlnFn("Usage: show <fragrance-id>")
				continue
			}
			_ = a.Show(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if atEOF {
			return
		}
	}
}
