package main

import (
	"github.com/wordparty/wordparty/internal/cli"
)

func main() {
	cli.Execute()
}
