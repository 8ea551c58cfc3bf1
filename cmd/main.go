// cmd/main.go
package main

import cmd "github.com/mwiater/cursorbench/cmd/cursorbench"

// main starts the cursorbench CLI application by delegating to the
// cobra root command defined in the cursorbench package.
func main() {
	cmd.Execute()
}
