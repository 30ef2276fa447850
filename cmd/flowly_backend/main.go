package main

import "github.com/flowly-app/budgeting_backend/internal/commands"

func main() {
	commands.Execute()
}
