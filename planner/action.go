package planner

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownAction = errors.New("unknown action")
)

// Action labels one edge of the search graph.
type Action uint8

const (
	North Action = iota
	South
	West
	East
	Vacuum
)

var actionTokens = [...]string{
	North:  "N",
	South:  "S",
	West:   "W",
	East:   "E",
	Vacuum: "V",
}

var actionNames = [...]string{
	North:  "North",
	South:  "South",
	West:   "West",
	East:   "East",
	Vacuum: "Vacuum",
}

// String returns the single letter token used in rendered plans.
func (a Action) String() string {
	if int(a) < len(actionTokens) {
		return actionTokens[a]
	}
	return fmt.Sprintf("Action(%d)", a)
}

// Name returns the long name of the action.
func (a Action) Name() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return a.String()
}

// MarshalText implements encoding.TextMarshaler.
func (a Action) MarshalText() ([]byte, error) {
	if int(a) >= len(actionTokens) {
		return nil, fmt.Errorf("%d: %w", a, ErrUnknownAction)
	}
	return []byte(actionTokens[a]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Action) UnmarshalText(text []byte) error {
	parsed, err := ParseAction(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAction accepts a token (N, S, W, E, V) or a long name.
func ParseAction(s string) (Action, error) {
	for i := range actionTokens {
		if s == actionTokens[i] || s == actionNames[i] {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownAction)
}

// Tokens converts a plan to its rendered tokens.
func Tokens(plan []Action) []string {
	tokens := make([]string, len(plan))
	for i, a := range plan {
		tokens[i] = a.String()
	}
	return tokens
}

// ParseTokens is the inverse of Tokens.
func ParseTokens(tokens []string) ([]Action, error) {
	plan := make([]Action, len(tokens))
	for i, t := range tokens {
		a, err := ParseAction(t)
		if err != nil {
			return nil, err
		}
		plan[i] = a
	}
	return plan, nil
}
