// The main package for the lookuply crawler executable.
package main

import (
	"github.com/lookuply/webcrawler/cmd"
)

// main defers all execution to the Cobra CLI.
func main() {
	cmd.Execute()
}
