package models

// Page identifies which view the shell is showing
type Page int

const (
	CompletePage Page = iota
	AboutPage
)

// Focus is the workspace pane receiving keys
type Focus int

const (
	FocusEditor Focus = iota
	FocusHistory
)

// AppModel represents the UI state - only local UI concerns.
// Workspace state lives in workspace.Workspace.
type AppModel struct {
	Status        string          // Status bar text
	LoadingDots   int             // Animation counter for loading dots
	Width         int             // Terminal width
	Height        int             // Terminal height
	Page          Page            // Active route
	Focus         Focus           // Pane receiving keys on the complete page
	Cursor        int             // Highlighted history row (display order)
	Info          ApplicationInfo // Branding, empty until fetched
	InfoLoaded    bool
	Backend       BackendInfo // Settings panel record
	BackendLoaded bool
	ServiceReady  bool // Whether the completion backend is configured
}
