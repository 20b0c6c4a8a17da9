// Package sweep classifies live processes and terminates the browser
// processes launched under the automation profile, while never touching
// the automation server itself.
package sweep

import "strings"

// Markers holds the substring tables driving classification. Keeping them
// as data, rather than embedded in control flow, lets the precedence rule
// be tested in isolation from actual process enumeration.
type Markers struct {
	// BrowserNames are tokens that mark a process name as a browser.
	BrowserNames []string
	// ProfileMarks are command-line substrings identifying the automation
	// browser profile.
	ProfileMarks []string
	// ServerNames are tokens that mark a process name as the automation
	// server runtime.
	ServerNames []string
	// ServerMarks are command-line substrings identifying the automation
	// server itself.
	ServerMarks []string
}

// DefaultMarkers returns the built-in tables: Chrome under the MCP
// automation profile is fair game, the Playwright MCP node server is not.
func DefaultMarkers() Markers {
	return Markers{
		BrowserNames: []string{"chrome", "google chrome"},
		ProfileMarks: []string{"mcp-chrome-profile"},
		ServerNames:  []string{"node"},
		ServerMarks:  []string{"mcp-server-playwright", "playwright"},
	}
}

// containsAny reports whether s contains any of the tokens,
// case-insensitively.
func containsAny(s string, tokens []string) bool {
	s = strings.ToLower(s)
	for _, t := range tokens {
		if strings.Contains(s, strings.ToLower(t)) {
			return true
		}
	}
	return false
}
