package main

import (
	"github.com/brk3/quit/cmd"
)

func main() {
	cmd.Execute()
}
