// Package main runs gitpulse, a daemon that watches a path inside a git
// working tree and commits, pushes, and emails a summary whenever its
// content fingerprint changes.
package main

import "github.com/gitpulse/gitpulse/internal"

func main() {
	internal.Run()
}
