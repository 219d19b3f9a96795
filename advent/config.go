package main

import (
	"fmt"
	"path/filepath"

	"github.com/vaughan0/go-ini"
	"go.uber.org/zap/zapcore"
)

// config is loaded from an ini file like
//
//	[inputs]
//	1 = day1.txt
//	2 = /home/me/aoc/2021/2.txt
//
//	[log]
//	level = debug
//
// Relative input paths are resolved against the config file's directory.
type config struct {
	inputs   map[string]string
	logLevel *zapcore.Level
}

func loadConfig(filename string) (*config, error) {
	file, err := ini.LoadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error loading config (%s): %s", filename, err)
	}
	cfg := &config{inputs: make(map[string]string)}
	dir := filepath.Dir(filename)
	for name, path := range file.Section("inputs") {
		if _, ok := solutions[name]; !ok {
			return nil, fmt.Errorf("config %s: input given for unknown solution %q", filename, name)
		}
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		cfg.inputs[name] = path
	}
	if s, ok := file.Get("log", "level"); ok {
		level, err := zapcore.ParseLevel(s)
		if err != nil {
			return nil, fmt.Errorf("config %s: %s", filename, err)
		}
		cfg.logLevel = &level
	}
	return cfg, nil
}
