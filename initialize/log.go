package initialize

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	// console writer to stdout for the process-global logger
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}
