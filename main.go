// Package main is the entry point for the lintfix CLI.
package main

import "lintfix.dev/pkg/lintfix/cmd"

func main() {
	cmd.Execute()
}
