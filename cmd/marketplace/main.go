package main

import "github.com/Cheertaboi/marketplace-schema/cmd/marketplace/commands"

func main() {
	commands.Execute()
}
