package taipower

/*------------------------------------------------------------------
 *
 * Purpose:	Save conversions to a log file.
 *
 * Description: One CSV line per grid code, for easy reading and later
 *		processing in a spreadsheet.
 *
 *		There are two alternatives here.
 *
 *		-L logfile		Specify full file path.
 *
 *		-l logdir		Daily names will be created here.
 *
 *		Use one or the other but not both.
 *
 *------------------------------------------------------------------*/

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lestrrat-go/strftime"
	"github.com/pkg/errors"
)

const conversionLogHeader = "utime,isotime,grid,easting,northing,latitude,longitude,error\n"

// ConversionLog appends conversions to a CSV file.  A nil *ConversionLog
// is valid and discards everything.
type ConversionLog struct {
	dailyNames bool
	path       string // Directory when dailyNames, otherwise the file.
	fp         *os.File
	openName   string // Applicable only when dailyNames is true.
	logger     *log.Logger

	now func() time.Time
}

/*------------------------------------------------------------------
 *
 * Function:	OpenConversionLog
 *
 * Purpose:	Initialization at start of application.
 *
 * Inputs:	dailyNames	- True if daily names should be generated.
 *				  In this case path is a directory.
 *				  When false, path would be the file name.
 *
 *		path		- Log file name or just directory.
 *				  Use "." for current directory.
 *				  Empty string disables feature.
 *
 * Description:	Files are opened lazily on first write and kept open.
 *
 *------------------------------------------------------------------*/

func OpenConversionLog(path string, dailyNames bool, logger *log.Logger) *ConversionLog {
	if len(path) == 0 {
		return nil
	}

	var l = &ConversionLog{
		dailyNames: dailyNames,
		logger:     logger,
		now:        time.Now,
	}

	if !dailyNames {
		logger.Info("Log file", "path", path)
		l.path = path

		return l
	}

	var stat, statErr = os.Stat(path)

	switch {
	case statErr == nil && stat.IsDir():
		l.path = path
	case statErr == nil:
		logger.Error("Log file location is not a directory, using current working directory instead", "path", path)
		l.path = "."
	default:
		// Parent directory must exist.  We don't create multiple levels like "mkdir -p"
		var mkdirErr = os.Mkdir(path, 0755)
		if mkdirErr == nil {
			logger.Info("Log file location has been created", "path", path)
			l.path = path
		} else {
			logger.Error("Failed to create log file location, using current working directory instead", "path", path, "err", mkdirErr)
			l.path = "."
		}
	}

	return l
}

// Open for append, writing the header only if the file is new.
func (l *ConversionLog) open(fullPath string) error {
	var _, statErr = os.Stat(fullPath)
	var alreadyThere = statErr == nil

	l.logger.Debug("Opening log file", "path", fullPath)

	var f, openErr = os.OpenFile(fullPath, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0644)
	if openErr != nil {
		return errors.Wrapf(openErr, "can't open log file %q for write", fullPath)
	}

	if !alreadyThere {
		if _, err := f.WriteString(conversionLogHeader); err != nil {
			f.Close() //nolint:gosec

			return errors.Wrapf(err, "writing header to %q", fullPath)
		}
	}

	l.fp = f

	return nil
}

/*------------------------------------------------------------------
 *
 * Function:	Write
 *
 * Purpose:	Save one conversion.
 *
 * Inputs:	code	- Grid code as given by the user.
 *
 *		conv	- Result, ignored if convErr is not nil.
 *
 *		convErr	- Why the conversion failed, or nil.
 *
 *------------------------------------------------------------------*/

func (l *ConversionLog) Write(code string, conv Conversion, convErr error) {
	if l == nil || len(l.path) == 0 {
		return
	}

	var now = l.now().UTC()

	if l.dailyNames {
		// Generate the file name from current date, UTC.
		var fname, _ = strftime.Format("%Y-%m-%d.log", now)

		if l.fp != nil && fname != l.openName {
			l.Close()
		}

		if l.fp == nil {
			if err := l.open(filepath.Join(l.path, fname)); err != nil {
				l.logger.Error("Conversion log unavailable", "err", err)

				return
			}

			l.openName = fname
		}
	} else if l.fp == nil {
		if err := l.open(l.path); err != nil {
			l.logger.Error("Conversion log unavailable", "err", err)
			l.path = ""

			return
		}
	}

	var row = []string{
		strconv.FormatInt(now.Unix(), 10), now.Format("2006-01-02T15:04:05Z"), code,
		"", "", "", "", "",
	}

	if convErr == nil {
		row[3] = strconv.Itoa(conv.Easting)
		row[4] = strconv.Itoa(conv.Northing)
		row[5] = strconv.FormatFloat(conv.Latitude, 'f', 6, 64)
		row[6] = strconv.FormatFloat(conv.Longitude, 'f', 6, 64)
	} else {
		row[7] = convErr.Error()
	}

	var w = csv.NewWriter(l.fp)
	w.Write(row) //nolint:errcheck
	w.Flush()

	if err := w.Error(); err != nil {
		l.logger.Error("CSV write error", "err", err)
	}
}

// Close the current file, if any.  Safe to call more than once.
func (l *ConversionLog) Close() {
	if l == nil || l.fp == nil {
		return
	}

	l.fp.Close() //nolint:gosec
	l.fp = nil
	l.openName = ""
}
