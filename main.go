package main

import (
	"github.com/lbryio/base58.go/cmd"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetLevel(log.InfoLevel)
	cmd.Execute()
}
