package main

import "github.com/livp123/wallfetch/cmd/wallfetch/commands"

func main() {
	commands.Execute()
}
