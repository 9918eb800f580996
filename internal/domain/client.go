package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Client identifies whose template and history are in use.
type Client struct {
	// Key is the trimmed, lower-cased name. It keys access codes and the
	// history location.
	Key string
	// Name is the title-cased display name. It names the template tab and
	// fills the Client column of saved entries.
	Name string
}

// NewClient normalizes a name as typed by the user.
func NewClient(raw string) Client {
	trimmed := strings.TrimSpace(raw)
	return Client{
		Key:  NormalizeName(trimmed),
		Name: cases.Title(language.English).String(trimmed),
	}
}

// NormalizeName returns the lookup key for a client name.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ValidKey reports whether key can name a per-client location on disk: not
// blank, no path separators, no "..".
func ValidKey(key string) bool {
	if strings.TrimSpace(key) == "" || strings.Contains(key, "..") {
		return false
	}
	return !strings.ContainsAny(key, "/\\\x00")
}

// IsZero reports whether no client name was given.
func (c Client) IsZero() bool {
	return c.Key == ""
}
