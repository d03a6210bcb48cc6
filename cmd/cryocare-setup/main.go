package main

import (
	"os"

	"github.com/cryocare-tools/cryocare-setup/internal/cli"
	"github.com/cryocare-tools/cryocare-setup/internal/logger"
)

var version = "dev"

func main() {
	err := cli.New(version, logger.NewConsole(logger.LevelFromEnv())).Command().Execute()
	if err != nil {
		cli.Report(os.Stderr, err)
		os.Exit(cli.ExitCode(err))
	}
}
