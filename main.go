// Package main is the entry point for the maxcensus CLI.
package main

import "github.com/maxport/maxcensus/cmd"

func main() {
	cmd.Execute()
}
