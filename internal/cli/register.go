package cli

import (
	"context"
	"fmt"
)

// Register creates an email-keyed account interactively.
func (a *App) Register(ctx context.Context) error {
	fullName, err := GetSimpleText(a.reader, "Full name (first last)", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword("Password", a.out)
	if err != nil {
		return err
	}

	u, err := a.registry.RegisterUser(ctx, fullName, email, password)
	if err != nil {
		fmt.Fprintln(a.out, "registration failed:", err)
		return err
	}

	fmt.Fprintln(a.out, u.Info())
	return nil
}

// RegisterByPhone creates a phone-keyed account interactively. The access
// code is generated and handed to the notifier, not shown on screen.
func (a *App) RegisterByPhone(ctx context.Context) error {
	fullName, err := GetSimpleText(a.reader, "Full name (first last)", a.out)
	if err != nil {
		return err
	}
	phone, err := GetSimpleText(a.reader, "Phone number (+XXXXXXXXXXX)", a.out)
	if err != nil {
		return err
	}

	u, err := a.registry.RegisterUserByPhone(ctx, fullName, phone)
	if err != nil {
		fmt.Fprintln(a.out, "registration failed:", err)
		return err
	}

	fmt.Fprintf(a.out, "registered %s, access code sent\n", u.Login)
	return nil
}
