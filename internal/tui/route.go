package tui

import (
	"fmt"
	"strings"
)

// RouteKind is the modal state of the view: the form is closed, creating
// a new item, or editing an existing one.
type RouteKind int

const (
	RouteClosed RouteKind = iota
	RouteCreating
	RouteEditing
)

// Route is the navigation state driving form visibility. It is parsed
// from a navigation string rather than held as ad-hoc booleans, so a
// pending create or edit can be deep-linked from the command line.
type Route struct {
	Kind   RouteKind
	EditID string
}

// ParseRoute understands the navigation parameters of the web UI:
// "" (closed), "create=true", and "edit=<id>".
func ParseRoute(s string) (Route, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "?")
	switch {
	case s == "":
		return Route{Kind: RouteClosed}, nil
	case s == "create=true":
		return Route{Kind: RouteCreating}, nil
	case strings.HasPrefix(s, "edit="):
		id := strings.TrimPrefix(s, "edit=")
		if id == "" {
			return Route{}, fmt.Errorf("edit route is missing an id")
		}
		return Route{Kind: RouteEditing, EditID: id}, nil
	default:
		return Route{}, fmt.Errorf("unknown route %q", s)
	}
}

func (r Route) String() string {
	switch r.Kind {
	case RouteCreating:
		return "create=true"
	case RouteEditing:
		return "edit=" + r.EditID
	default:
		return ""
	}
}
