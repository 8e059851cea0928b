// cmd/enigma/main.go
package main

import (
	"enigma/internal/appshell"
	"enigma/internal/cli"
)

func main() { appshell.Main(cli.Run) }
