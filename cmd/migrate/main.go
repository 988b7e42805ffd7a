package main

import (
	"os"

	"github.com/xavierca1/nicsan-site/pkg/logging"
)

func main() {
	logger := logging.Default()
	defer logger.Sync()

	if err := newRootCmd(logger).Execute(); err != nil {
		os.Exit(1)
	}
}
