package model

// InstallDescriptor tells a deployment pipeline how to detect that the
// product is already installed at the resolved version. The feed's
// "Registered File" trigger compares against the application bundle's own
// version, so short and full bundle versions are the same value.
type InstallDescriptor struct {
	CFBundleShortVersionString string `json:"CFBundleShortVersionString"`
	CFBundleVersion            string `json:"CFBundleVersion"`
	Path                       string `json:"path"`
	Type                       string `json:"type"`
}

// PkgInfo carries the pkginfo fields extracted from the vendor metadata.
// OS bounds decoded to the "0.0.0" sentinel mean unbounded and are omitted.
type PkgInfo struct {
	Description      string              `json:"description"`
	DisplayName      string              `json:"display_name"`
	MinimumOSVersion string              `json:"minimum_os_version,omitempty"`
	MaximumOSVersion string              `json:"maximum_os_version,omitempty"`
	Installs         []InstallDescriptor `json:"installs,omitempty"`
}

type ResolvedUpdate struct {
	URL     string  `json:"url"`
	Version string  `json:"version"`
	PkgInfo PkgInfo `json:"additional_pkginfo"`
	// FeedSHA256 is the digest of the raw feed payload this record was
	// resolved from, so pipelines can detect feed churn between runs.
	FeedSHA256 string `json:"feed_sha256,omitempty"`
}
