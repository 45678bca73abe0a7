// Command mindmate is a terminal client for the MindMate support assistant.
package main

import "github.com/diogo/mindmate/internal/commands"

func main() {
	commands.Execute()
}
