package routes

import "net/http"

// Group organizes routes under a common prefix with shared tags.
type Group struct {
	Prefix   string
	Routes   []Route
	Children []Group
}

// Register adds all routes from the given groups to the mux.
func Register(mux *http.ServeMux, groups ...Group) {
	for _, group := range groups {
		registerGroup(mux, "", group)
	}
}

// Wrap returns a copy of the group with every handler, including those of
// child groups, wrapped by the given middleware.
func (g Group) Wrap(mw func(http.Handler) http.Handler) Group {
	wrapped := Group{Prefix: g.Prefix}

	wrapped.Routes = make([]Route, len(g.Routes))
	for i, route := range g.Routes {
		handler := mw(http.HandlerFunc(route.Handler))
		route.Handler = handler.ServeHTTP
		wrapped.Routes[i] = route
	}

	wrapped.Children = make([]Group, len(g.Children))
	for i, child := range g.Children {
		wrapped.Children[i] = child.Wrap(mw)
	}

	return wrapped
}

func registerGroup(mux *http.ServeMux, parentPrefix string, group Group) {
	fullPrefix := parentPrefix + group.Prefix
	for _, route := range group.Routes {
		pattern := route.Method + " " + fullPrefix + route.Pattern
		mux.HandleFunc(pattern, route.Handler)
	}
	for _, child := range group.Children {
		registerGroup(mux, fullPrefix, child)
	}
}
