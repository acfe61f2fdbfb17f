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
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	Register(ctx context.Context) error
	RegisterByPhone(ctx context.Context) error
	Login(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	RequestCode(ctx context.Context) error
	Import(ctx context.Context) error
	List(ctx context.Context) error
	Reset(ctx context.Context) error
}

const helpText = `Commands:
  register        — create an account with email and password
  register-phone  — create an account keyed by phone number
  login           — check a login/password pair
  passwd          — change an account password
  request-code    — rotate and resend an access code
  import          — bulk-import users from a file
  list            — list directory accounts
  reset           — empty the directory
  help            — show this text
  exit | quit     — leave the program`

// runREPL starts a simple read–eval–print loop for the directory console.
//
// It reads a line, parses the first token as the command, and dispatches
// to methods on 'a'. Unknown commands are reported back to the user. The
// loop exits on reader EOF, context cancellation, or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers
// report their own failures. This keeps the loop resilient and focused
// on I/O.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader, out io.Writer) {
	fmt.Fprintln(out, "User directory console. Type 'help' for commands.")

	for {
		if ctx.Err() != nil {
			return
		}

		fmt.Fprint(out, "userdir> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			fmt.Fprintln(out, "read error:", err)
			return
		}

		cmd := strings.ToLower(strings.TrimSpace(line))
		switch cmd {
		case "":
			continue
		case "help":
			fmt.Fprintln(out, helpText)
		case "register":
			_ = a.Register(ctx)
		case "register-phone":
			_ = a.RegisterByPhone(ctx)
		case "login":
			_ = a.Login(ctx)
		case "passwd":
			_ = a.ChangePassword(ctx)
		case "request-code":
			_ = a.RequestCode(ctx)
		case "import":
			_ = a.Import(ctx)
		case "list":
			_ = a.List(ctx)
		case "reset":
			_ = a.Reset(ctx)
		case "exit", "quit":
			return
		default:
			fmt.Fprintf(out, "unknown command %q, type 'help'\n", cmd)
		}
	}
}
