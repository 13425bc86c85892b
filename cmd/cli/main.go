package main

import "dramahub/cmd/cli/command"

func main() {
	command.Execute()
}
