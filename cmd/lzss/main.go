package main

import (
	"runtime"

	"github.com/alecthomas/kong"
)

var version = "dev"

// Cli is the top-level flag and subcommand set, grounded on the reference
// undock CLI's kong-tagged Cli struct and its logging flags.
type Cli struct {
	LogLevel   string `kong:"name=log-level,env=LOG_LEVEL,default=info,help='Set log level (trace, debug, info, warn, error).'"`
	LogJSON    bool   `kong:"name=log-json,env=LOG_JSON,default=false,help='Enable JSON logging output.'"`
	LogNoColor bool   `kong:"name=log-nocolor,env=LOG_NOCOLOR,default=false,help='Disable colorized console logging.'"`

	Compress   CompressCmd   `kong:"cmd,help='Compress a file with the LZSS codec.'"`
	Decompress DecompressCmd `kong:"cmd,help='Decompress an LZSS container.'"`
	Tune       TuneCmd       `kong:"cmd,help='Search sample files for a good window/min-match configuration.'"`

	Version kong.VersionFlag `kong:"help='Print version and exit.'"`
}

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	var cli Cli
	parseCtx := kong.Parse(&cli,
		kong.Name("lzss"),
		kong.Description("Compress and decompress files with a configurable LZSS codec."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	logger := configureLogging(cli.LogLevel, cli.LogJSON, cli.LogNoColor)

	if err := parseCtx.Run(&Context{Logger: logger}); err != nil {
		logger.Fatal().Err(err).Msgf("%s failed", parseCtx.Command())
	}
}
