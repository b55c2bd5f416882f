package cli

import (
	"context"
	"fmt"
)

func (a *App) Signup(ctx context.Context) error {
	email, err := a.prompt("Enter email")
	if err != nil {
		return err
	}
	name, err := a.prompt("Enter your name (optional)")
	if err != nil {
		return err
	}
	password, err := GetPassword("Create a password", a.out)
	if err != nil {
		return err
	}
	confirm, err := GetPassword("Confirm your password", a.out)
	if err != nil {
		return err
	}
	if password != confirm {
		fmt.Fprintln(a.out, "Passwords do not match.")
		return nil
	}

	if err := a.auth.Signup(ctx, email, password, name); err != nil {
		fmt.Fprintf(a.out, "Signup failed: %s\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Welcome to ScentID, %s!\n", a.auth.User().Email)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := a.prompt("Enter email")
	if err != nil {
		return err
	}
	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	if err := a.auth.Login(ctx, email, password); err != nil {
		fmt.Fprintf(a.out, "Login failed: %s\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s\n", a.auth.User().Email)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	user := a.auth.User()
	if user == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s>\n", user.Name, user.Email)
	return nil
}

func (a *App) prompt(text string) (string, error) {
	return GetSimpleText(a.reader, text, a.out)
}
