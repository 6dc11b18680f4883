// constants.go
package brew

const (
	// DefaultBinary is the Homebrew executable name looked up in PATH
	DefaultBinary = "brew"

	// InfoJSONVersion is the `brew info --json=` schema used for name resolution
	InfoJSONVersion = "v2"

	// DefaultInstallPathIntel is the default Homebrew prefix for Intel Macs
	DefaultInstallPathIntel = "/usr/local"

	// DefaultInstallPathARM is the default Homebrew prefix for ARM Macs
	DefaultInstallPathARM = "/opt/homebrew"

	// DefaultInstallPathLinux is the default Homebrew prefix on Linux
	DefaultInstallPathLinux = "/home/linuxbrew/.linuxbrew"
)
