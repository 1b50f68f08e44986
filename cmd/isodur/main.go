// Command isodur parses ISO 8601 duration strings and applies them to a
// point in time.
package main

import (
	"fmt"
	"time"

	"go.uber.org/zap"                        // Logging
	kingpin "gopkg.in/alecthomas/kingpin.v2" // Command line args parser

	"github.com/mintel/isoduration"
	"github.com/mintel/isoduration/cmd" // Common logging setup func
)

// Command line opts
var (
	durations = kingpin.Arg("duration", "ISO 8601 duration string. May be given multiple times. Example: P1Y2M3DT6H15M30S or P2W.").Required().Strings()
	from      = kingpin.Flag("from", "Base time in RFC 3339 format. Defaults to now.").PlaceHolder("2006-01-02T15:04:05Z").String()
	approx    = kingpin.Flag("approx", "Also print the approximate fixed-length duration (24h days, 30.436875d months, 365.2425d years).").Short('a').Bool()
)

var logger *zap.Logger

func main() {
	kingpin.CommandLine.Help = "Parse ISO 8601 duration strings and apply them to a point in time."
	kingpin.Parse()

	// Set up logger.
	logger = cmd.SetupLogging()
	defer func() {
		// Make sure any buffered logs get flushed before exiting.
		// Subsequent calls to logger.Fatal() perform their own Sync().
		// Do this inside a closure func so that the linter will stop complaining
		// about not checking the error output of Sync().
		_ = logger.Sync()
	}()

	base := time.Now()
	if *from != "" {
		var err error
		base, err = time.Parse(time.RFC3339, *from)
		if err != nil {
			logger.Fatal("error parsing base time",
				zap.String("from", *from),
				zap.Error(err),
			)
		}
	}

	for _, s := range *durations {
		c, err := isoduration.Parse(s)
		if err != nil {
			logger.Fatal("error parsing duration",
				zap.String("duration", s),
				zap.Error(err),
			)
		}
		then, err := isoduration.Std.Add(*c, base)
		if err != nil {
			logger.Fatal("error applying duration",
				zap.String("duration", s),
				zap.Error(err),
			)
		}
		fmt.Printf("%s\t%s\n", c, then.Format(time.RFC3339))
		if *approx {
			d, err := c.Duration()
			if err != nil {
				logger.Fatal("duration overflows int64",
					zap.String("duration", s),
					zap.Error(err),
				)
			}
			fmt.Printf("\t~%s\n", d)
		}
	}
}
