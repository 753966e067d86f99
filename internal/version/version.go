// internal/version/version.go
package version

// Version is stamped by the release process.
var Version = "0.1.0"
