package main

import (
	"github.com/livp123/blockledger/cmd/blockledger/commands"
)

func main() {
	commands.Execute()
}
