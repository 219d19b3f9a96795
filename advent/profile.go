package main

import (
	"os"

	"github.com/felixge/fgprof"
	"go.uber.org/zap"
)

// withProfile runs fn, recording an fgprof profile (in pprof format) to
// filename if it is non-empty.
func withProfile(filename string, fn func() error) (err error) {
	if filename == "" {
		return fn()
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	stop := fgprof.Start(f, fgprof.FormatPprof)
	defer func() {
		if stopErr := stop(); err == nil {
			err = stopErr
		}
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
		logger.Debug("wrote profile", zap.String("file", filename))
	}()
	return fn()
}
