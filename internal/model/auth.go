package model

import (
	"encoding/json"
	"sort"
	"strings"
)

// Credential is the transient sign-in input. It is sent to the auth endpoint
// and never persisted anywhere on the client.
type Credential struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is the auth endpoint's success payload.
type TokenResponse struct {
	Token string `json:"token"`
}

// RoleSet is a normalized set of role names. Names are lowercased and trimmed
// on insertion so that membership checks are case-insensitive everywhere.
type RoleSet map[string]struct{}

func NewRoleSet(roles ...string) RoleSet {
	s := RoleSet{}
	for _, role := range roles {
		s.Add(role)
	}
	return s
}

func (s RoleSet) Add(role string) {
	role = strings.ToLower(strings.TrimSpace(role))
	if role == "" {
		return
	}
	s[role] = struct{}{}
}

func (s RoleSet) Has(role string) bool {
	_, ok := s[strings.ToLower(strings.TrimSpace(role))]
	return ok
}

// Values returns the role names in sorted order.
func (s RoleSet) Values() []string {
	out := make([]string, 0, len(s))
	for role := range s {
		out = append(out, role)
	}
	sort.Strings(out)
	return out
}

func (s RoleSet) Equal(other RoleSet) bool {
	if len(s) != len(other) {
		return false
	}
	for role := range s {
		if _, ok := other[role]; !ok {
			return false
		}
	}
	return true
}

// RoleSet serializes as a plain JSON array so the persisted identity snapshot
// stays readable and compatible with the wire shape of the role claim.
func (s RoleSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Values())
}

func (s *RoleSet) UnmarshalJSON(data []byte) error {
	var roles []string
	if err := json.Unmarshal(data, &roles); err != nil {
		return err
	}
	*s = NewRoleSet(roles...)
	return nil
}

// Identity is the working representation of who is signed in, derived from
// token claims on every sign-in or restore and destroyed on sign-out.
type Identity struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Roles    RoleSet `json:"roles"`
}
