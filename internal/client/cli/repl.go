package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Run starts the interactive shell. The outer loop is the unauthenticated
// entry surface (login/register); a successful login, or a token left over
// from a previous run, moves into the authenticated area via enterApp.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Finanzas Network terminal (type 'help' for commands)")

	// A durable token from an earlier run drops the user straight into the
	// authenticated area, like reopening a logged-in browser tab.
	if a.isAllowed(ctx) {
		if a.enterApp(ctx) {
			return
		}
	}

	for {
		line, ok := a.readLine("fn> ")
		if !ok {
			return
		}
		cmd, _ := splitCommand(line)

		switch cmd {
		case "":
			continue

		case "help":
			fmt.Fprintln(a.out, "Available commands: login, register, exit")

		case "login":
			if err := a.Login(ctx); err == nil {
				if a.enterApp(ctx) {
					return
				}
			}

		case "register":
			_ = a.Register(ctx)

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

// protectedLoop dispatches the authenticated commands. It returns true when
// the user wants to quit the whole program, false on logout (back to the
// login prompt). Command handlers print their own errors; the loop stays
// focused on I/O.
func (a *App) protectedLoop(ctx context.Context) bool {
	for {
		line, ok := a.readLine(fmt.Sprintf("fn %s> ", a.getStatus()))
		if !ok {
			return true
		}
		cmd, _ := splitCommand(line)

		switch cmd {
		case "":
			continue

		case "help":
			fmt.Fprintln(a.out, "Available commands: (d)ashboard, backtest, keys, account, whoami, logout, exit")

		case "d", "dashboard":
			_ = a.Dashboard(ctx)

		case "backtest":
			_ = a.Backtest(ctx)

		case "keys":
			_ = a.Keys(ctx)

		case "account":
			_ = a.Account(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "logout":
			_ = a.Logout(ctx)
			return false

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return true

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) getStatus() string {
	if a.session.User != nil {
		return "(" + a.session.User.Email + ")"
	}
	return ""
}

// readLine prints the prompt and reads one trimmed line. ok is false when
// input is exhausted.
func (a *App) readLine(prompt string) (string, bool) {
	fmt.Fprint(a.out, prompt)
	line, err := a.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line), true
		}
		return "", false
	}
	return strings.TrimSpace(line), true
}

func splitCommand(line string) (cmd string, args []string) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return "", nil
	}
	return parts[0], parts[1:]
}
