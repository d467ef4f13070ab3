package navigation

import (
	"net/url"
	"strconv"
	"strings"
)

// MentorLink points at the mentor listing with the connection view for id open.
func MentorLink(id int) string {
	return build(RouteMentors, url.Values{ParamMentor: {strconv.Itoa(id)}})
}

// CategoryLink points at the mentor listing narrowed to a skill category.
func CategoryLink(id int) string {
	return build(RouteMentors, url.Values{ParamCategory: {strconv.Itoa(id)}})
}

// PathLink points at the learning path page with path id highlighted.
func PathLink(id int) string {
	return build(RouteLearningPaths, url.Values{ParamPath: {strconv.Itoa(id)}})
}

// SearchLink points at the mentor listing carrying a search hint.
// Blank queries link to the plain listing.
func SearchLink(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return RouteMentors
	}
	return build(RouteMentors, url.Values{ParamSearch: {query}})
}

// WithCategory rewrites destination so its query carries category=id,
// preserving any other parameters. Unparseable destinations fall back to
// the plain category link.
func WithCategory(destination string, id int) string {
	u, err := url.Parse(destination)
	if err != nil {
		return CategoryLink(id)
	}
	values := u.Query()
	values.Set(ParamCategory, strconv.Itoa(id))
	u.RawQuery = values.Encode()
	return u.String()
}

// Split separates a link into its route and parsed navigation params.
func Split(link string) (string, Params) {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil {
		return "", Params{}
	}
	route := u.Path
	if route == "" {
		route = RouteDashboard
	}
	return route, ParseParams(u.Query())
}

func build(route string, values url.Values) string {
	if len(values) == 0 {
		return route
	}
	return route + "?" + values.Encode()
}
