package model

import (
	"strings"
	"time"
	"unicode"
)

type Role string

const (
	RoleOwner    Role = "owner"
	RoleManager  Role = "manager"
	RoleGardener Role = "gardener"
	RoleViewer   Role = "viewer"
)

var Roles = []Role{RoleOwner, RoleManager, RoleGardener, RoleViewer}

func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleManager, RoleGardener, RoleViewer:
		return true
	}
	return false
}

// GardenUser is a team member. It is unrelated to login accounts.
type GardenUser struct {
	ID         string    `json:"id" yaml:"id"`
	Name       string    `json:"name" yaml:"name"`
	Email      string    `json:"email" yaml:"email"`
	Role       Role      `json:"role" yaml:"role"`
	JoinedDate time.Time `json:"joined_date" yaml:"joined_date"`
	Avatar     string    `json:"avatar" yaml:"avatar"`
}

// Initials returns the upper-cased first letters of the first two words of name.
func Initials(name string) string {
	var b strings.Builder
	n := 0
	for _, word := range strings.Fields(name) {
		if n == 2 {
			break
		}
		for _, r := range word {
			b.WriteRune(unicode.ToUpper(r))
			break
		}
		n++
	}
	return b.String()
}
