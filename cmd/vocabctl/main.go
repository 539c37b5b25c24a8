package main

import (
	"fmt"
	"os"

	"github.com/saransh1220/storefront-vocabulary/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "vocabctl: %v\n", err)
		os.Exit(1)
	}
}
