package banner

import (
	"fmt"
)

const (
	// AppVersion version number
	AppVersion = "v0.1.0"

	// AppName app code name
	AppName = "tritium"
)

// Print prints the application name and version.
func Print() {
	fmt.Printf("%s %s\n", AppName, AppVersion)
}
