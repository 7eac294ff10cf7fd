package models

// Route is one entry of the static navigation table
type Route struct {
	Key     string
	Title   string
	Path    string
	Enabled bool
}
