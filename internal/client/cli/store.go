package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/vaultkeeper/internal/api"
	"github.com/dmitrijs2005/vaultkeeper/internal/client/client"
)

// Account prints the account's email, main store and sessions.
func (a *App) Account(ctx context.Context) error {
	if a.session == nil {
		return client.ErrNotLoggedIn
	}

	var acc *api.Account
	if err := a.call(ctx, func(ctx context.Context) error {
		var err error
		acc, err = a.api.GetAccount(ctx)
		return err
	}); err != nil {
		return err
	}

	a.printf("Email:      %s\n", acc.Email)
	mainStore := acc.MainStore
	if mainStore == "" {
		mainStore = "(none yet)"
	}
	a.printf("Main store: %s\n\n", mainStore)

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SESSION\tACTIVE\tCREATED\tCLIENT\t")
	for _, s := range acc.Sessions {
		current := ""
		if s.ID == a.session.ID {
			current = " (this)"
		}
		fmt.Fprintf(tw, "%s%s\t%t\t%s\t%s\t\n",
			s.ID, current, s.Active, s.Created.Local().Format(time.DateTime), s.Metadata["user_agent"])
	}
	return tw.Flush()
}

// Show prints the store with the given id, the main store when id is empty.
func (a *App) Show(ctx context.Context, id string) error {
	if a.session == nil {
		return client.ErrNotLoggedIn
	}

	var raw json.RawMessage
	if err := a.call(ctx, func(ctx context.Context) error {
		var err error
		raw, err = a.api.GetStore(ctx, id)
		return err
	}); err != nil {
		return err
	}

	return a.printJSON(raw)
}

// Put uploads the JSON store read from path. id selects the target store;
// empty means the main store.
func (a *App) Put(ctx context.Context, id, path string) error {
	if a.session == nil {
		return client.ErrNotLoggedIn
	}

	data, err := readFile(path)
	if err != nil {
		return err
	}
	if !json.Valid(data) {
		return fmt.Errorf("%s: not a JSON document", path)
	}

	var saved json.RawMessage
	if err := a.call(ctx, func(ctx context.Context) error {
		saved, err = a.api.PutStore(ctx, id, data)
		return err
	}); err != nil {
		return err
	}

	return a.printJSON(saved)
}

// Ping reports whether the server answers.
func (a *App) Ping(ctx context.Context) error {
	if err := a.call(ctx, a.api.Ping); err != nil {
		return err
	}
	a.println("OK")
	return nil
}

// readFile is a test seam for os.ReadFile.
var readFile = os.ReadFile

func (a *App) printJSON(raw json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return err
	}
	a.println(buf.String())
	return nil
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
