package main

import (
	"fmt"
	"os"

	"github.com/MikeBiancalana/datekit/internal/cli"
	"github.com/MikeBiancalana/datekit/internal/logger"
)

func main() {
	if err := logger.InitializeWithConfig(logger.ConfigFromEnv()); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	err := cli.Execute()
	logger.Close()
	if err != nil {
		os.Exit(1)
	}
}
