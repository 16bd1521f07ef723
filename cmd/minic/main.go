package main

import "github.com/minilang/minic/cmd/minic/commands"

func main() {
	commands.Execute()
}
