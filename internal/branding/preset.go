package branding

import (
	_ "embed"
	"strings"

	"github.com/Rorical/RoriComplete/internal/models"
)

// DefaultTitle is used when no application name was fetched
const DefaultTitle = "RoriComplete"

//go:embed logo.txt
var defaultLogo string

// DefaultLogo is the bundled banner shown when no logo is configured
func DefaultLogo() string {
	return strings.TrimRight(defaultLogo, "\n")
}

// Tier is a terminal width breakpoint
type Tier int

const (
	TierXS Tier = iota
	TierSM
	TierMD
	TierLG
	TierXL
)

// TierFor maps a terminal width onto a breakpoint tier
func TierFor(width int) Tier {
	switch {
	case width < 40:
		return TierXS
	case width < 60:
		return TierSM
	case width < 90:
		return TierMD
	case width < 120:
		return TierLG
	default:
		return TierXL
	}
}

// Preset is the logo box geometry
type Preset struct {
	PadX      int
	PadY      int
	MaxHeight int
}

var (
	vectorHeights = [...]int{3, 3, 4, 4, 5}
	rasterHeight  = 5
)

// IsVector reports whether the logo path names an SVG asset
func IsVector(logo models.Optional) bool {
	path, ok := logo.Get()
	return ok && strings.HasSuffix(strings.ToLower(path), ".svg")
}

// PresetFor picks the logo geometry for the given logo and width. Vector
// logos render smaller with more padding and grow with the tier; raster
// logos use one fixed height.
func PresetFor(logo models.Optional, width int) Preset {
	if IsVector(logo) {
		return Preset{PadX: 2, PadY: 1, MaxHeight: vectorHeights[TierFor(width)]}
	}
	return Preset{PadX: 1, PadY: 0, MaxHeight: rasterHeight}
}

// Title is the window title for info
func Title(info models.ApplicationInfo) string {
	if info.Name == "" {
		return DefaultTitle
	}
	return info.Name
}
