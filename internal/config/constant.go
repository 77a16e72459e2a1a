package config

import "time"

const (
	DefaultPort       = 8000
	DefaultConfigName = "config"
	DefaultConfigType = "yaml"

	DefaultFeedBaseURL = "https://www.microsoft.com/mac/autoupdate"
	DefaultCultureCode = "0409"
	DefaultFeedTimeout = 30 * time.Second
	DefaultCacheTTL    = 15 * time.Minute
	DefaultLogLevel    = "info"

	// The feed server rejects default client identifiers, so requests carry
	// the stock MAU agent string.
	DefaultFeedUserAgent = "Microsoft%20AutoUpdate/3.0.6 CFNetwork/720.2.4 Darwin/14.4.0 (x86_64)"
)

// DefaultProducts maps a product name to its short feed code.
var DefaultProducts = map[string]string{
	"Excel":      "XCEL",
	"OneNote":    "ONMC",
	"Outlook":    "OPIM",
	"PowerPoint": "PPT3",
	"Word":       "MSWD",
}
