package main

import (
	"os"

	"github.com/cryocare-tools/cryocare-setup/internal/cli"
	"github.com/cryocare-tools/cryocare-setup/internal/logger"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	log := logger.NewConsole(logger.LevelFromEnv())

	err := cli.New(version, log).Command().Execute()
	if err != nil {
		cli.Report(os.Stderr, err)
	}
	os.Exit(cli.ExitCode(err))
}
