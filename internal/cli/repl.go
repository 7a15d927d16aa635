package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isSignedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Try(ctx context.Context) error
	History(ctx context.Context) error
	Say(ctx context.Context, message string) error
}

// runREPL starts a read-eval-print loop for the A.S.I.A. client.
//
// It reads a line from the provided scanner and parses the first token as the
// command. Any line that does not start with a known command is sent to the
// assistant as a chat message, so conversation stays the default activity.
// The loop exits on scanner EOF or when the user types "exit" or "quit".
//
// Commands:
//
//	Signed out:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — sign in
//	  - try            — send a sample question without an account
//	  - history        — show saved chats (prompts to sign in)
//	  - exit | quit    — leave the program
//
//	Signed in:
//	  - help           — show available commands
//	  - history        — show saved chats
//	  - logout         — sign out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("asia> %s", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		cmd := strings.Fields(line)[0]

		switch cmd {
		case "help":
			if a.isSignedIn() {
				printlnFn("Available commands: history, logout, exit. Anything else is sent to the assistant.")
			} else {
				printlnFn("Available commands: register, login, try, history, exit. Anything else is sent to the assistant.")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "try":
			_ = a.Try(ctx)

		case "history":
			_ = a.History(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			_ = a.Say(ctx, line)
		}
	}
}
