package cli

import (
	"context"
	"fmt"
)

// Login checks a login/password pair and prints the account summary on
// success. Unknown logins and wrong passwords produce the same message.
func (a *App) Login(ctx context.Context) error {
	login, err := GetSimpleText(a.reader, "Login (email or phone)", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword("Password", a.out)
	if err != nil {
		return err
	}

	info, ok, err := a.registry.LoginUser(ctx, login, password)
	if err != nil {
		fmt.Fprintln(a.out, "login failed:", err)
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "invalid login or password")
		return nil
	}

	fmt.Fprintln(a.out, info)
	return nil
}
