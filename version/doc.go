// Package version reports the tabkit build version for --version, the
// startup log line and the telemetry resource.
//
// Values come from -ldflags and fall back to the module's embedded VCS
// settings:
//
//	go build -ldflags "-X github.com/kbukum/tabkit/version.Version=1.0.0" ./cmd/tabkit
package version
