package ui

// NavBreakpoint is the viewport width above which the mobile menu is closed.
const NavBreakpoint = 768

// NavbarScrollThreshold is the scroll offset past which the navbar gets its
// scrolled style.
const NavbarScrollThreshold = 50

// AnchorOffset is subtracted from a smooth-scroll target so the fixed navbar
// does not cover it.
const AnchorOffset = 100

// BrowserSettings are the thresholds, timings and messages the site script
// reads from the page instead of hard-coding them.
type BrowserSettings struct {
	NavBreakpoint         int    `json:"nav_breakpoint"`
	NavbarScrollThreshold int    `json:"navbar_scroll_threshold"`
	AnchorOffset          int    `json:"anchor_offset"`
	NotificationMS        int64  `json:"notification_ms"`
	CopiedMessage         string `json:"copied_message"`
	CopyFailedMessage     string `json:"copy_failed_message"`
	CodeCopiedMessage     string `json:"code_copied_message"`
}

// DefaultBrowserSettings returns the settings every page ships with.
func DefaultBrowserSettings() BrowserSettings {
	return BrowserSettings{
		NavBreakpoint:         NavBreakpoint,
		NavbarScrollThreshold: NavbarScrollThreshold,
		AnchorOffset:          AnchorOffset,
		NotificationMS:        NotificationDuration.Milliseconds(),
		CopiedMessage:         msgCopied,
		CopyFailedMessage:     msgCopyFailed,
		CodeCopiedMessage:     msgCodeCopied,
	}
}
