// internal/version/version.go
package version

// Version is overridden at build time:
//
//	go build -ldflags "-X github.com/andersen-lab/BarcodeForge/internal/version.Version=v1.2.3"
var Version = "dev"
