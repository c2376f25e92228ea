package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

type Theme string

const (
	ThemeSystem Theme = "" // follow the OS color scheme
	ThemeDark   Theme = "dark"
	ThemeLight  Theme = "light"
)

var ErrInvalidTheme = errors.New("theme must be dark, light or empty")

func ParseTheme(s string) (Theme, error) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case ThemeSystem, ThemeDark, ThemeLight:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTheme, s)
	}
}

// Repository stores one theme preference per anonymous client.
// An unknown client has ThemeSystem and no error.
type Repository interface {
	GetTheme(ctx context.Context, clientID string) (Theme, error)
	SetTheme(ctx context.Context, clientID string, theme Theme) error
}
