package main

import "github.com/xll-gen/aoc2018/cmd"

// main is the entry point of the aoc2018 CLI application.
// It executes the root command which handles argument parsing and subcommand dispatch.
func main() {
	cmd.Execute()
}
