package main

import "github.com/skilldex/skilldex-cli/cmd"

func main() {
	cmd.Execute()
}
