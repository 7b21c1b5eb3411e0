package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"cribbage-core/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logrus.WithError(err).Error("command failed")
		os.Exit(1)
	}
}
