package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

var errUsage = errors.New("usage")

// execIface is the command surface dispatch needs. *App satisfies it.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context, email string) error
	Logout(ctx context.Context) error
	Revoke(ctx context.Context, sessionID string) error
	Account(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Put(ctx context.Context, id, path string) error
	Ping(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: login [email], ping, exit"
	helpLoggedIn  = "Available commands: account, show [id], put [id] <file>, revoke <session>, logout, ping, exit"
)

// dispatch runs one command. It reports quit for exit and quit.
//
//	login [email]      mail a code to email and sign in with it
//	account            show the account and its sessions
//	show [id]          print a store, the main store by default
//	put [id] <file>    upload a JSON store
//	revoke <session>   revoke one of the account's sessions
//	logout             revoke this session and forget it
//	ping               check the server
func dispatch(ctx context.Context, a execIface, cmd string, args []string) (quit bool, err error) {
	switch cmd {
	case "help":
		if a.isLoggedIn() {
			printlnFn(helpLoggedIn)
		} else {
			printlnFn(helpLoggedOut)
		}

	case "login":
		err = a.Login(ctx, argAt(args, 0))

	case "logout":
		err = a.Logout(ctx)

	case "revoke":
		if len(args) != 1 {
			return false, fmt.Errorf("%w: revoke <session>", errUsage)
		}
		err = a.Revoke(ctx, args[0])

	case "account":
		err = a.Account(ctx)

	case "show", "get", "get-store":
		err = a.Show(ctx, argAt(args, 0))

	case "put", "put-store":
		switch len(args) {
		case 1:
			err = a.Put(ctx, "", args[0])
		case 2:
			err = a.Put(ctx, args[0], args[1])
		default:
			return false, fmt.Errorf("%w: put [id] <file>", errUsage)
		}

	case "ping":
		err = a.Ping(ctx)

	case "exit", "quit":
		return true, nil

	default:
		return false, fmt.Errorf("unknown command: %s", cmd)
	}

	return false, err
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

// runREPL reads commands from reader until EOF or exit. Command errors are
// printed and the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("vk %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		quit, cmdErr := dispatch(ctx, a, parts[0], parts[1:])
		if cmdErr != nil {
			printlnFn("Error:", cmdErr.Error())
		}
		if quit {
			printlnFn("Bye!")
			return
		}
		if ctx.Err() != nil {
			return
		}
	}
}
