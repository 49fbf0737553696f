package main

import "launchpad/cmd"

func main() {
	cmd.Execute()
}
