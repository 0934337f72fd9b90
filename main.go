package main

import "github.com/camkes-http/makefs/cmd"

// main is the entry point of the makefs CLI.
// It executes the root command which handles argument parsing and subcommand dispatch.
func main() {
	cmd.Execute()
}
