package main

import (
	"github.com/pdfforge/pdfforge/cmd/pdfforge/commands"
)

func main() {
	commands.Execute()
}
