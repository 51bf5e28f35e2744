package admin

import (
	"fmt"
	"os"
	"strconv"
)

const (
	EnvSiteHeader    = "ADMIN_SITE_HEADER"
	EnvSiteTitle     = "ADMIN_SITE_TITLE"
	EnvRecentActions = "ADMIN_RECENT_ACTIONS"
)

// DefaultRecentActions is the recent-actions limit used when none is configured.
const DefaultRecentActions = 10

// Config controls the admin site's presentation.
// RecentActions is nil when unset; an explicit 0 lists no recent actions.
type Config struct {
	SiteHeader    string `toml:"site_header"`
	SiteTitle     string `toml:"site_title"`
	RecentActions *int   `toml:"recent_actions"`
}

// RecentActionsLimit returns the configured limit, or DefaultRecentActions when unset.
func (c *Config) RecentActionsLimit() int {
	if c.RecentActions == nil {
		return DefaultRecentActions
	}
	return *c.RecentActions
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *Config) Finalize() error {
	if c.SiteHeader == "" {
		c.SiteHeader = "Django administration"
	}
	if c.SiteTitle == "" {
		c.SiteTitle = "Django site admin"
	}
	if c.RecentActions == nil {
		n := DefaultRecentActions
		c.RecentActions = &n
	}

	if v := os.Getenv(EnvSiteHeader); v != "" {
		c.SiteHeader = v
	}
	if v := os.Getenv(EnvSiteTitle); v != "" {
		c.SiteTitle = v
	}
	if v := os.Getenv(EnvRecentActions); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvRecentActions, err)
		}
		c.RecentActions = &n
	}

	if n := *c.RecentActions; n < 0 || n > 100 {
		return fmt.Errorf("recent_actions must be between 0 and 100, got %d", n)
	}
	return nil
}

// Merge applies non-zero values from the overlay configuration.
func (c *Config) Merge(overlay *Config) {
	if overlay.SiteHeader != "" {
		c.SiteHeader = overlay.SiteHeader
	}
	if overlay.SiteTitle != "" {
		c.SiteTitle = overlay.SiteTitle
	}
	if overlay.RecentActions != nil {
		c.RecentActions = overlay.RecentActions
	}
}
