package main

import (
	"fmt"
	"os"

	"github.com/askdoc-labs/askdoc-cli/internal/adapters/driving/cli"
)

// version is overridden at build time:
//
//	go build -ldflags "-X main.version=1.2.3" ./cmd/askdoc
var version = "dev"

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
