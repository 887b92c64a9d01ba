package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"xml2kml/pkg/convert"
	"xml2kml/pkg/options"
)

var GitCommit = "local"
var GitTag = "0.0.0"

var logger = log.New(os.Stderr, "xml2kml: ", 0)

func getVersion() string {
	return fmt.Sprintf("%s %s, commit: %s", filepath.Base(os.Args[0]), GitTag, GitCommit)
}

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := options.ParseCLI(getVersion)
	switch {
	case errors.Is(err, flag.ErrHelp), errors.Is(err, options.ErrUsage):
		return 0
	case err != nil:
		logger.Printf("%v\n", err)
		return 1
	}
	if cfg.Version {
		fmt.Println(getVersion())
		return 0
	}

	if _, err := convert.Run(cfg, os.Stdout, os.Stderr); err != nil {
		var se *convert.SetupError
		if errors.As(err, &se) {
			logger.Printf("Error opening files: %v\n", se)
		} else {
			logger.Printf("%v\n", err)
		}
		return 1
	}
	return 0
}
