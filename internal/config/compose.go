package config

import "github.com/phambaophuc/logo-compositor/internal/services/placement"

// PlacementDefaults converts the compose settings into calculator defaults.
func (c ComposeConfig) PlacementDefaults() placement.Defaults {
	return placement.Defaults{
		Anchor:            placement.ParseAnchor(c.DefaultPosition, placement.BottomRight),
		Padding:           c.DefaultPadding,
		LogoSizePercent:   c.DefaultLogoSize,
		MinPadding:        c.MinPadding,
		EnforceMinPadding: c.EnforceMinPadding,
	}
}
