package main

import "github.com/jjtimmons/phynex/cmd"

func main() {
	cmd.Execute() // initialize cobra commands
}
