package cli

import (
	"context"
	"fmt"
)

// List prints every directory account, one per line.
func (a *App) List(ctx context.Context) error {
	list, err := a.registry.List(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "list failed:", err)
		return err
	}

	if len(list) == 0 {
		fmt.Fprintln(a.out, "directory is empty")
		return nil
	}

	for _, u := range list {
		fmt.Fprintf(a.out, "%s\t%s\t%v\n", u.Login, u.FullName(), u.Meta)
	}
	return nil
}

// Reset empties the directory after an explicit confirmation.
func (a *App) Reset(ctx context.Context) error {
	answer, err := GetSimpleText(a.reader, "Type 'yes' to delete every account", a.out)
	if err != nil {
		return err
	}
	if answer != "yes" {
		fmt.Fprintln(a.out, "aborted")
		return nil
	}

	if err := a.registry.Clear(ctx); err != nil {
		fmt.Fprintln(a.out, "reset failed:", err)
		return err
	}

	fmt.Fprintln(a.out, "directory cleared")
	return nil
}
