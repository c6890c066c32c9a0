package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrijs2005/gophfeed/internal/client/models"
	"github.com/dmitrijs2005/gophfeed/internal/client/navigator"
)

const notAvailable = "N/A"

// Home shows the feed. refresh bypasses the cached copy.
func (a *App) Home(ctx context.Context, refresh bool) error {
	a.toRoot()

	posts, err := a.feedService.Posts(ctx, refresh)
	if err != nil {
		return err
	}
	printPosts(a.out, posts)
	return nil
}

func (a *App) Profile(ctx context.Context) error {
	a.nav.Navigate(navigator.ScreenProfile)

	p, err := a.feedService.Profile(ctx)
	if err != nil {
		return err
	}
	printProfile(a.out, p)
	return nil
}

// Back returns to the previous screen of the group and shows it again.
func (a *App) Back(ctx context.Context) error {
	if !a.nav.Back() {
		fmt.Fprintln(a.out, "Already on the first screen")
		return nil
	}
	if a.nav.Current() == navigator.ScreenHome {
		return a.Home(ctx, false)
	}
	return nil
}

func printPosts(w io.Writer, posts []models.Post) {
	if len(posts) == 0 {
		fmt.Fprintln(w, "No posts yet")
		return
	}
	for _, p := range posts {
		fmt.Fprintf(w, "\n%s\n", p.Title)
		if p.Body != "" {
			fmt.Fprintln(w, p.Body)
		}
		if p.HasImage() {
			fmt.Fprintln(w, "[image attached]")
		}
	}
	fmt.Fprintln(w)
}

func printProfile(w io.Writer, p *models.UserProfile) {
	fullName := strings.TrimSpace(p.Name + " " + p.Lastname)

	fmt.Fprintf(w, "(%s) %s\n", avatarInitial(p.Name), orNA(fullName))
	fmt.Fprintf(w, "Username:   %s\n", orNA(p.Username))
	fmt.Fprintf(w, "Email:      %s\n", orNA(p.Email))
	fmt.Fprintf(w, "Birth date: %s\n", orNA(p.BirthDate))
}

// avatarInitial is the upper-cased first letter of name, "U" without one.
func avatarInitial(name string) string {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(name))
	if r == utf8.RuneError {
		return "U"
	}
	return string(unicode.ToUpper(r))
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
