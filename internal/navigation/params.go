// Package navigation keeps view state and deep-link query parameters in sync.
//
// Inbound, recognised parameters are parsed into Params and reconciled into
// a state patch by pure functions; applying a patch is idempotent. Outbound,
// link builders produce the destinations the dashboard and search box
// navigate to.
package navigation

import (
	"net/url"
	"strconv"
	"strings"
)

// Query parameter keys shared by every view.
const (
	ParamMentor   = "mentor"
	ParamCategory = "category"
	ParamPath     = "path"
	ParamSearch   = "search"
)

// Page routes that deep links point at.
const (
	RouteDashboard     = "/"
	RouteMentors       = "/mentors"
	RouteLearningPaths = "/learning-paths"
	RouteSettings      = "/settings"
)

// Params are the recognised navigation parameters of a request.
// Nil ids mean the parameter was absent or malformed.
type Params struct {
	MentorID   *int   `json:"mentor,omitempty"`
	CategoryID *int   `json:"category,omitempty"`
	PathID     *int   `json:"path,omitempty"`
	Search     string `json:"search,omitempty"`
}

// ParseParams extracts navigation parameters, dropping malformed ids silently.
func ParseParams(values url.Values) Params {
	return Params{
		MentorID:   parseID(values.Get(ParamMentor)),
		CategoryID: parseID(values.Get(ParamCategory)),
		PathID:     parseID(values.Get(ParamPath)),
		Search:     strings.TrimSpace(values.Get(ParamSearch)),
	}
}

// Empty reports whether no recognised parameter is set.
func (p Params) Empty() bool {
	return p.MentorID == nil && p.CategoryID == nil && p.PathID == nil && p.Search == ""
}

// Values renders the params back into query values.
func (p Params) Values() url.Values {
	values := url.Values{}
	if p.MentorID != nil {
		values.Set(ParamMentor, strconv.Itoa(*p.MentorID))
	}
	if p.CategoryID != nil {
		values.Set(ParamCategory, strconv.Itoa(*p.CategoryID))
	}
	if p.PathID != nil {
		values.Set(ParamPath, strconv.Itoa(*p.PathID))
	}
	if p.Search != "" {
		values.Set(ParamSearch, p.Search)
	}
	return values
}

func parseID(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return nil
	}
	return &id
}
