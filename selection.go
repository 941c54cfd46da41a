package titlespec

import (
	"fmt"
	"net/url"
	"strings"
)

// State is the state of the selection state machine.
type State int

// Selection states.
const (
	StateLoading State = iota
	StateEmpty
	StateNoSelection
	StateSelected
	StateNotFound
)

// String returns the state name used in logs and JSON.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateEmpty:
		return "empty"
	case StateNoSelection:
		return "no_selection"
	case StateSelected:
		return "selected"
	case StateNotFound:
		return "not_found"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Selection is the resolved selection. Record is set only for
// StateSelected; Code carries the requested identifier for StateNotFound.
type Selection struct {
	State  State   `json:"state"`
	Code   string  `json:"code,omitempty"`
	Record *Record `json:"record,omitempty"`
}

// Navigation is the navigation context a selection is resolved from: the
// permalink code and whether the page is in embed mode.
type Navigation struct {
	Code  string `json:"code,omitempty"`
	Embed bool   `json:"embed,omitempty"`
}

// CodeParam is the query parameter carrying the permalink identifier.
const CodeParam = "code"

// EmbedPath is the path that switches the page into embed mode.
const EmbedPath = "/embed"

// ParseNavigation reads a navigation context from a URL path and query.
// An empty code parameter counts as absent.
func ParseNavigation(path string, query url.Values) Navigation {
	return Navigation{
		Code:  query.Get(CodeParam),
		Embed: strings.TrimRight(path, "/") == EmbedPath,
	}
}

// URL returns the page URL for this navigation context.
func (n Navigation) URL() string {
	path := "/"
	if n.Embed {
		path = EmbedPath
	}
	if n.Code == "" {
		return path
	}
	return path + "?" + url.Values{CodeParam: {n.Code}}.Encode()
}

// SelectionInput holds everything a selection is derived from.
type SelectionInput struct {
	// Dataset is nil while the dataset is loading.
	Dataset *Dataset

	// Navigation is the current navigation context.
	Navigation Navigation

	// Picked is the record the user last picked, if any. It wins over an
	// index lookup when its Title Code equals the navigation code, so a
	// pick among duplicate codes stays on the picked record.
	Picked *Record

	// DefaultFirst selects the first record when no code is requested.
	DefaultFirst bool
}

// Resolve derives the selection from its inputs. It has no side effects and
// is re-evaluated whenever the dataset or the navigation context changes.
func Resolve(in SelectionInput) Selection {
	ds := in.Dataset
	code := in.Navigation.Code

	switch {
	case ds == nil:
		return Selection{State: StateLoading, Code: code}
	case ds.Len() == 0:
		return Selection{State: StateEmpty, Code: code}
	}

	if in.Picked != nil && in.Picked.TitleCode() == code && ds.Contains(in.Picked) {
		return Selection{State: StateSelected, Code: code, Record: in.Picked}
	}

	if code == "" {
		if in.DefaultFirst {
			first := ds.First()
			return Selection{State: StateSelected, Code: first.TitleCode(), Record: first}
		}
		return Selection{State: StateNoSelection}
	}

	rec, err := ds.FindByKey(code)
	if err != nil {
		return Selection{State: StateNotFound, Code: code}
	}
	return Selection{State: StateSelected, Code: code, Record: rec}
}

// NotFoundMessage returns the copy shown when a title code has no record.
func NotFoundMessage(code, feedbackURL string) string {
	msg := fmt.Sprintf("Title code %q was not found. The collection comes from a public records request and is known to be incomplete.", code)
	if feedbackURL == "" {
		return msg
	}
	return msg + " If you know where this specification can be found, let us know: " + feedbackURL
}
