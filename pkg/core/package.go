// pkg/core/package.go
package core

// Package is one record returned by a metadata query
type Package struct {
	Name        string // Short name (e.g. "wget")
	FullName    string // Canonical name (e.g. "user/tap/wget")
	Version     string // Stable version
	Description string // Package description
	Installed   bool   // Whether any version is installed
	Cask        bool   // Whether the record is a cask rather than a formula
}
