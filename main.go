// Package main is the entry point for the snakeshift CLI.
package main

import "snakeshift.dev/pkg/snakeshift/cmd"

func main() {
	cmd.Execute()
}
