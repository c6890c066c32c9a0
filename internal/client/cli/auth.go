package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophfeed/internal/client/models"
	"github.com/dmitrijs2005/gophfeed/internal/client/navigator"
	"github.com/dmitrijs2005/gophfeed/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for email and password and signs in. On success the
// navigator has already switched to the feed group, and the feed is shown.
func (a *App) Login(ctx context.Context) error {
	a.toRoot()

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.authService.Login(ctx, email, string(password)); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Login successful")
	return a.Home(ctx, false)
}

// Register collects the signup form field by field and creates the account.
func (a *App) Register(ctx context.Context) error {
	a.nav.Navigate(navigator.ScreenRegister)

	var form models.SignupForm
	prompts := []struct {
		label string
		dst   *string
	}{
		{"Enter first name", &form.Name},
		{"Enter last name", &form.Lastname},
		{"Enter username", &form.Username},
		{"Enter email", &form.Email},
		{"Enter birth date (YYYY-MM-DD)", &form.BirthDate},
	}
	for _, p := range prompts {
		v, err := getSimpleText(a.reader, p.label, a.out)
		if err != nil {
			return err
		}
		*p.dst = v
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	form.Password = string(password)

	if _, err := a.authService.Register(ctx, form); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Account created")
	return a.Home(ctx, false)
}

// Logout asks for confirmation first; anything but y/yes cancels.
func (a *App) Logout(ctx context.Context) error {
	req := a.authService.RequestLogout()

	answer, err := getSimpleText(a.reader, "Are you sure you want to logout? [y/N]", a.out)
	if err != nil {
		_ = req.Cancel()
		return err
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		if err := req.Confirm(ctx); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Logged out")
	default:
		_ = req.Cancel()
		fmt.Fprintln(a.out, "Logout cancelled")
	}
	return nil
}
