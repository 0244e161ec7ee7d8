package taipower

/*------------------------------------------------------------------
 *
 * Purpose:	Taipower grid code to TWD67 latitude / longitude.
 *
 * Description:	Codes come from the command line or, when there are
 *		none, one per line from stdin.  Results go to stdout,
 *		diagnostics to stderr.
 *
 *------------------------------------------------------------------*/

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lestrrat-go/strftime"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Reference codes from http://www.sunriver.com.tw/grid_taipower.htm
var demoGridCodes = []string{"G8150HD7812", "B8146CC58"}

type taipower2llOptions struct {
	format          string
	timestampFormat string
	logger          *log.Logger
	conversionLog   *ConversionLog
	converter       *Converter
}

func Taipower2LLMain() {
	var status = Taipower2LL(os.Args, os.Stdin)
	if status != 0 {
		os.Exit(status)
	}
}

/*------------------------------------------------------------------
 *
 * Function:	Taipower2LL
 *
 * Purpose:	Command line program, minus the exit.
 *
 * Inputs:	args	- Program name and arguments, like os.Args.
 *
 *		stdin	- Where to read codes if none are on the command line.
 *
 * Returns:	Exit status.  0 if every code converted, 1 if any failed,
 *		2 for usage errors.
 *
 *------------------------------------------------------------------*/

func Taipower2LL(args []string, stdin io.Reader) int {
	var flags = pflag.NewFlagSet(args[0], pflag.ContinueOnError)

	var format = flags.StringP("format", "f", "text", "Output format: text, dms, or yaml.")
	var timestampFormat = flags.StringP("timestamp-format", "T", "", "Precede each result with 'strftime' format time stamp.")
	var logFile = flags.StringP("log-file", "L", "", "Append conversions to this CSV file.")
	var logDir = flags.StringP("log-dir", "l", "", "Append conversions to daily CSV files in this directory.")
	var tablesFile = flags.StringP("tables", "t", "", "YAML file replacing the built in letter tables.")
	var debug = flags.BoolP("debug", "d", false, "Show decoding details.")
	var demo = flags.Bool("demo", false, "Convert the reference codes "+strings.Join(demoGridCodes, " and ")+".")
	var version = flags.Bool("version", false, "Print version and exit.")
	var help = flags.BoolP("help", "h", false, "Display help text.")

	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s - Taipower grid to TWD67 latitude / longitude conversion.\n", args[0])
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [grid-code ...]\n", args[0])
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "With no grid codes, read one per line from stdin.\n")
		fmt.Fprintf(os.Stderr, "\n")
		flags.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Examples:\n")
		fmt.Fprintf(os.Stderr, "\t%s G8150HD7812\n", args[0])
		fmt.Fprintf(os.Stderr, "\t%s -f dms 'B8146 CC58'\n", args[0])
	}

	if err := flags.Parse(args[1:]); err != nil {
		return 2
	}

	if *help {
		flags.Usage()

		return 0
	}

	if *version {
		printVersion(*debug)

		return 0
	}

	var logger = NewLogger(os.Stderr, "taipower2ll", *debug)

	switch *format {
	case "text", "dms", "yaml":
	default:
		logger.Error("Unknown output format", "format", *format)

		return 2
	}

	if len(*logFile) > 0 && len(*logDir) > 0 {
		logger.Error("Use --log-file or --log-dir but not both")

		return 2
	}

	var tables = DefaultGridTables

	if len(*tablesFile) > 0 {
		var err error

		tables, err = loadGridTablesFile(*tablesFile)
		if err != nil {
			logger.Error("Can't use grid tables", "err", err)

			return 2
		}

		logger.Debug("Loaded grid tables", "path", *tablesFile)
	}

	var conversionLog *ConversionLog
	if len(*logDir) > 0 {
		conversionLog = OpenConversionLog(*logDir, true, logger)
	} else {
		conversionLog = OpenConversionLog(*logFile, false, logger)
	}
	defer conversionLog.Close()

	var opts = &taipower2llOptions{
		format:          *format,
		timestampFormat: *timestampFormat,
		logger:          logger,
		conversionLog:   conversionLog,
		converter:       &Converter{Decoder: NewDecoder(tables), Projector: DefaultProjector},
	}

	var codes = flags.Args()
	if *demo {
		codes = append(demoGridCodes[:len(demoGridCodes):len(demoGridCodes)], codes...)
	}

	var failed = false

	if len(codes) > 0 {
		for _, code := range codes {
			if !opts.convertOne(code) {
				failed = true
			}
		}
	} else {
		var scanner = bufio.NewScanner(stdin)

		for scanner.Scan() {
			var line = strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}

			if !opts.convertOne(line) {
				failed = true
			}
		}

		if err := scanner.Err(); err != nil {
			logger.Error("Error reading stdin", "err", err)

			return 1
		}
	}

	if failed {
		return 1
	}

	return 0
}

func loadGridTablesFile(path string) (*GridTables, error) {
	var fp, err = os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening grid tables")
	}
	defer fp.Close()

	return LoadGridTables(fp)
}

func (o *taipower2llOptions) convertOne(code string) bool {
	var conv, err = o.converter.Convert(code)

	o.conversionLog.Write(code, conv, err)

	if err != nil {
		o.logger.Error("Conversion failed", "grid", code, "err", err)

		return false
	}

	o.logger.Debug("Decoded", "grid", conv.Grid, "easting", conv.Easting, "northing", conv.Northing)

	if o.format == "yaml" {
		var out, yamlErr = yaml.Marshal([]Conversion{conv})
		if yamlErr != nil {
			o.logger.Error("YAML encoding failed", "grid", code, "err", yamlErr)

			return false
		}

		fmt.Print(string(out))

		return true
	}

	var prefix = ""
	if len(o.timestampFormat) > 0 {
		var ts, tsErr = strftime.Format(o.timestampFormat, time.Now())
		if tsErr != nil {
			o.logger.Warn("Bad timestamp format", "format", o.timestampFormat, "err", tsErr)
		} else {
			prefix = "[" + ts + "] "
		}
	}

	if o.format == "dms" {
		fmt.Printf("%s%s: easting = %d, northing = %d, %s\n", prefix, conv.Grid, conv.Easting, conv.Northing, conv.Geo().DMS())
	} else {
		fmt.Printf("%s%s: easting = %d, northing = %d, %s\n", prefix, conv.Grid, conv.Easting, conv.Northing, conv.Geo())
	}

	return true
}
