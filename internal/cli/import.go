package cli

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/multierr"
)

// Import bulk-imports users from a semicolon-delimited file:
//
//	fullName;email-or-empty;salt:hash;phone-or-empty
//
// Rows that fail validation or collide with existing logins are reported
// and skipped.
func (a *App) Import(ctx context.Context) error {
	path, err := GetSimpleText(a.reader, "Import file path", a.out)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintln(a.out, "cannot open file:", err)
		return err
	}
	defer f.Close()

	imported, err := a.registry.ImportUsers(ctx, f)
	fmt.Fprintf(a.out, "imported %d users\n", len(imported))
	for _, rowErr := range multierr.Errors(err) {
		fmt.Fprintln(a.out, "skipped:", rowErr)
	}
	return err
}
