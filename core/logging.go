package core

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	// LogFileName is the active log inside the log directory
	LogFileName = "kickdrive.log"
	// MaxLogSize triggers rotation of the active log on startup
	MaxLogSize = 10 * 1024 * 1024
)

// SetupLogging builds the application logger.
// The terminal owns stdout, so output is discarded unless debug is set.
// The returned file is nil when logging is disabled and must be closed by the caller otherwise.
func SetupLogging(debug bool, dir, level string) (*logrus.Logger, *os.File, error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:    true,
		DisableColors:    true,
		QuoteEmptyFields: true,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	if !debug {
		log.SetOutput(io.Discard)
		return log, nil, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return log, nil, errors.Wrapf(err, "create log dir %s", dir)
	}

	path := filepath.Join(dir, LogFileName)
	if err := rotateLog(path, time.Now()); err != nil {
		log.SetOutput(io.Discard)
		return log, nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return log, nil, errors.Wrapf(err, "open log file %s", path)
	}
	log.SetOutput(f)
	return log, f, nil
}

// rotateLog moves an oversized log aside with a timestamp suffix
func rotateLog(path string, now time.Time) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "stat log file %s", path)
	}
	if info.Size() < MaxLogSize {
		return nil
	}

	ext := filepath.Ext(path)
	base := path[:len(path)-len(ext)]
	rotated := fmt.Sprintf("%s-%s%s", base, now.Format("20060102-150405"), ext)
	if err := os.Rename(path, rotated); err != nil {
		return errors.Wrapf(err, "rotate log file %s", path)
	}
	return nil
}
