package main

import (
	"os"

	"route-cost-service/cmd/costctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
