package main

import "github.com/wework/cbridge/cmd/cbridge/cmd"

func main() {
	cmd.Execute()
}
