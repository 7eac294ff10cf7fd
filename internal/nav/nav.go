package nav

import "github.com/Rorical/RoriComplete/internal/models"

// WideWidth is the first terminal width that gets the inline link row
const WideWidth = 90

// DefaultRoutes is the static route table of the shell
func DefaultRoutes() []models.Route {
	return []models.Route{
		{Key: "complete", Title: "Complete", Path: "/complete", Enabled: true},
		{Key: "about", Title: "About", Path: "/about", Enabled: true},
		{Key: "settings", Title: "Settings", Path: "/settings", Enabled: false},
	}
}

// Layout is the presentation chosen for the current width
type Layout int

const (
	LayoutMenu Layout = iota
	LayoutInline
)

func LayoutFor(width int) Layout {
	if width >= WideWidth {
		return LayoutInline
	}
	return LayoutMenu
}

// Shell holds the navigation state. The collapsible menu is open exactly
// when anchor is non-nil; anchor is the highlighted menu row.
type Shell struct {
	routes []models.Route
	active string
	anchor *int
}

func NewShell(routes []models.Route) *Shell {
	s := &Shell{routes: routes}
	for _, r := range routes {
		if r.Enabled {
			s.active = r.Key
			break
		}
	}
	return s
}

func (s *Shell) Routes() []models.Route {
	return s.routes
}

func (s *Shell) Active() string {
	return s.active
}

func (s *Shell) MenuOpen() bool {
	return s.anchor != nil
}

// Anchor returns the highlighted menu row
func (s *Shell) Anchor() (int, bool) {
	if s.anchor == nil {
		return 0, false
	}
	return *s.anchor, true
}

// Open opens the menu with the active route highlighted
func (s *Shell) Open() {
	idx := 0
	for i, r := range s.routes {
		if r.Key == s.active {
			idx = i
			break
		}
	}
	s.anchor = &idx
}

func (s *Shell) Close() {
	s.anchor = nil
}

// Move shifts the highlighted row by delta, skipping disabled routes
func (s *Shell) Move(delta int) {
	if s.anchor == nil || len(s.routes) == 0 {
		return
	}
	n := len(s.routes)
	idx := *s.anchor
	for i := 0; i < n; i++ {
		idx = ((idx+delta)%n + n) % n
		if s.routes[idx].Enabled {
			s.anchor = &idx
			return
		}
	}
}

// Select navigates to the route with key and closes the menu. Disabled or
// unknown routes are rejected, but the menu still closes.
func (s *Shell) Select(key string) bool {
	s.Close()
	for _, r := range s.routes {
		if r.Key == key && r.Enabled {
			s.active = key
			return true
		}
	}
	return false
}

// SelectAnchor navigates to the highlighted menu row
func (s *Shell) SelectAnchor() bool {
	if s.anchor == nil {
		return false
	}
	key := s.routes[*s.anchor].Key
	return s.Select(key)
}
