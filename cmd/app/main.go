package main

import (
	"os"

	"github.com/Noctua76/noctua-panic-backend/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
