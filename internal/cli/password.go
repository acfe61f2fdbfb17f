package cli

import (
	"context"
	"fmt"
)

// ChangePassword rotates a user-chosen password interactively.
func (a *App) ChangePassword(ctx context.Context) error {
	login, err := GetSimpleText(a.reader, "Login (email or phone)", a.out)
	if err != nil {
		return err
	}
	oldPass, err := GetPassword("Current password", a.out)
	if err != nil {
		return err
	}
	newPass, err := GetPassword("New password", a.out)
	if err != nil {
		return err
	}

	if err := a.registry.ChangePassword(ctx, login, oldPass, newPass); err != nil {
		fmt.Fprintln(a.out, "password change failed:", err)
		return err
	}

	fmt.Fprintln(a.out, "password changed")
	return nil
}

// RequestCode rotates the access code of a phone account and resends it.
// The outcome is reported identically whether or not the login exists.
func (a *App) RequestCode(ctx context.Context) error {
	login, err := GetSimpleText(a.reader, "Login (phone)", a.out)
	if err != nil {
		return err
	}

	if err := a.registry.RequestAccessCode(ctx, login); err != nil {
		fmt.Fprintln(a.out, "request failed:", err)
		return err
	}

	fmt.Fprintln(a.out, "if the account exists, a new access code was sent")
	return nil
}
