package main

import "github.com/snekimus/snek/cmd/snek/commands"

func main() {
	commands.Execute()
}
