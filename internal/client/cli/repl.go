package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn and printFn are test seams for REPL output.
var printlnFn = fmt.Println
var printFn = fmt.Print

// execIface is the command surface the REPL dispatches to. App satisfies it;
// tests use a stub.
type execIface interface {
	isLoggedIn() bool
	SignUp(ctx context.Context) error
	SignIn(ctx context.Context) error
	SignOut(ctx context.Context) error
	List(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Add(ctx context.Context, args []string) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Toggle(ctx context.Context, args []string) error
	Dashboard(ctx context.Context) error
	Reload(ctx context.Context) error
	Profile(ctx context.Context, args []string) error
	Upload(ctx context.Context, args []string) error
}

const (
	helpAnonymous = "Available commands: signup, signin, exit"
	helpSignedIn  = `Available commands:
  dashboard                           summary, upcoming interviews, overdue tasks
  list <collection> [f=v] [sort=[-]f] table of applications|interviews|tasks|contacts
  show <collection> <id>              all fields of a record
  add <collection>                    create a record
  edit <collection> <id>              change a record
  delete <collection> <id>            remove a record
  toggle <task id>                    mark a task done or not done
  profile [edit]                      show or edit the profile
  upload <avatar|cv|portfolio> <path> attach a file to the profile
  reload                              fetch everything again
  signout, exit`
)

// runREPL reads commands line by line and dispatches them to a. Handler
// errors are printed and the loop goes on. It returns on EOF, exit or quit.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printFn(fmt.Sprintf("jk (%s)> ", statusFn()))
		line, rerr := reader.ReadString('\n')
		if rerr != nil && line == "" {
			printlnFn()
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		var err error
		switch cmd {
		case "help", "?":
			if a.isLoggedIn() {
				printlnFn(helpSignedIn)
			} else {
				printlnFn(helpAnonymous)
			}
		case "signup", "register":
			err = a.SignUp(ctx)
		case "signin", "login":
			err = a.SignIn(ctx)
		case "signout", "logout":
			err = a.SignOut(ctx)
		case "l", "ls", "list":
			err = a.List(ctx, args)
		case "show":
			err = a.Show(ctx, args)
		case "add", "new":
			err = a.Add(ctx, args)
		case "edit":
			err = a.Edit(ctx, args)
		case "delete", "rm":
			err = a.Delete(ctx, args)
		case "toggle":
			err = a.Toggle(ctx, args)
		case "dashboard", "d":
			err = a.Dashboard(ctx)
		case "reload", "sync":
			err = a.Reload(ctx)
		case "profile":
			err = a.Profile(ctx, args)
		case "upload":
			err = a.Upload(ctx, args)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn(describe(err))
		}
	}
}
