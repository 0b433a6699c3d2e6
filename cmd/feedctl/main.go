package main

import "bizfeed/cmd/feedctl/commands"

func main() {
	commands.Execute()
}
