// Package navigation serves the metadata the client applies on every route
// transition: the document title and whether the route is a root tab.
package navigation

import (
	"strings"

	"charterdesk/internal/platform/config"
)

// Meta describes one client route.
type Meta struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	PageTitle string `json:"page_title"`
	IsRoot    bool   `json:"is_root"`
}

// Catalog resolves route metadata by route name.
type Catalog struct {
	appName string
	routes  map[string]config.Route
}

func NewCatalog(appName string, routes []config.Route) *Catalog {
	c := &Catalog{appName: appName, routes: make(map[string]config.Route, len(routes))}
	for _, r := range routes {
		c.routes[r.Name] = r
	}
	return c
}

// Lookup returns the metadata of a known route.
func (c *Catalog) Lookup(name string) (Meta, bool) {
	r, ok := c.routes[name]
	if !ok {
		return Meta{}, false
	}
	title := strings.TrimSpace(r.Title)
	return Meta{
		Name:      r.Name,
		Title:     title,
		PageTitle: PageTitle(title, c.appName),
		IsRoot:    r.Root,
	}, true
}

// PageTitle is "<title> - <app>", or the app name alone for an untitled route.
func PageTitle(title, appName string) string {
	if title == "" {
		return appName
	}
	return title + " - " + appName
}
