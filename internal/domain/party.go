package domain

import (
	"strings"
	"time"
)

// PartyType classifies who a balance or payment belongs to.
type PartyType string

const (
	PartyClient   PartyType = "client"
	PartyVendor   PartyType = "vendor"
	PartyEmployee PartyType = "employee"
)

// Valid reports whether the party type is known.
func (p PartyType) Valid() bool {
	switch p {
	case PartyClient, PartyVendor, PartyEmployee:
		return true
	}
	return false
}

// Party is a stable identity for a client, vendor or employee. Records
// reference parties by ID; the name is display metadata. Grouping by
// free-text name (the legacy behavior) splits a party whose name was entered
// with different casing or punctuation, so the name is only matched once,
// trimmed, when the party is first created.
type Party struct {
	ID        string
	Type      PartyType
	Name      string
	CreatedAt time.Time
}

// NormalizePartyName trims surrounding whitespace. Matching stays
// case-sensitive to mirror the data as entered.
func NormalizePartyName(name string) string {
	return strings.TrimSpace(name)
}
