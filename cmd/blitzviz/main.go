// blitzviz renders the BlitzForge presentation charts: brute-force
// password crack-time estimates for an assumed hash rate, written as
// PNG files. No cracking or hashing happens here; everything is
// closed-form keyspace arithmetic over fixed scenario tables.
//
// Usage:
//
//	blitzviz [hash-rate-ghs]
//	blitzviz generate [hash-rate-ghs]
//	blitzviz estimate <password> [hash-rate-ghs]
package main

import "github.com/101shaan/BlitzForge/internal/cli"

// version is the application version reported by --version.
const version = "v1.0"

func main() {
	cli.Execute(version)
}
