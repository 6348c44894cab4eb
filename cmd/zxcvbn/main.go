// Command zxcvbn is a CLI tool for estimating password strength.
//
// Usage:
//
//	zxcvbn <password> [flags]
//	zxcvbn "MyP@ssw0rd123!"
//	zxcvbn "qwerty" --json
//	zxcvbn "correcthorsebatterystaple" --verbose
package main

import "os"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	envNoColor := os.Getenv("NO_COLOR") != ""
	os.Exit(run(os.Stdout, os.Stderr, os.Args[1:], envNoColor))
}
