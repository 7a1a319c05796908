package domain

import (
	"errors"
	"fmt"
)

// ErrPlayerNotFound indicates a full-name lookup matched no player.
var ErrPlayerNotFound = errors.New("player not found")

// ErrTeamNotFound indicates a team name matched no team statistic rows.
var ErrTeamNotFound = errors.New("team not found")

// ErrNoGamesInScope guards the league-average denominator: zero distinct
// games in the selected scope is reported, never divided through.
var ErrNoGamesInScope = errors.New("no games in scope")

// DataUnavailableError indicates a required source file is missing or
// structurally broken. It is fatal for the session; there is no partial-data
// fallback.
type DataUnavailableError struct {
	File string
	Err  error
}

func (e *DataUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("dataset unavailable: %s: %v", e.File, e.Err)
	}
	return fmt.Sprintf("dataset unavailable: %s", e.File)
}

func (e *DataUnavailableError) Unwrap() error { return e.Err }

// AsDataUnavailable attempts to unwrap an error into a DataUnavailableError.
func AsDataUnavailable(err error) (*DataUnavailableError, bool) {
	var duErr *DataUnavailableError
	if errors.As(err, &duErr) {
		return duErr, true
	}
	return nil, false
}

// AmbiguousNameError indicates a full name resolves to more than one player.
// Callers must handle it explicitly; the resolver never picks one of the
// colliding records.
type AmbiguousNameError struct {
	Name string
	IDs  []int
}

func (e *AmbiguousNameError) Error() string {
	return fmt.Sprintf("ambiguous player name %q (%d matches)", e.Name, len(e.IDs))
}

// AsAmbiguousName attempts to unwrap an error into an AmbiguousNameError.
func AsAmbiguousName(err error) (*AmbiguousNameError, bool) {
	var anErr *AmbiguousNameError
	if errors.As(err, &anErr) {
		return anErr, true
	}
	return nil, false
}
