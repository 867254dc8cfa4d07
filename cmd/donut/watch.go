package main

import (
	"github.com/frameloss/donut"
	"go.uber.org/zap"
	"os"
	"time"
)

// reloadData loads the data file into chart and puts the overrides back on
// top of it.
func reloadData(chart *donut.Chart, path string) error {
	df, err := donut.LoadFile(path)
	if err != nil {
		return err
	}
	if err := df.Apply(chart); err != nil {
		return err
	}
	return applyOverrides(chart)
}

// watchData reloads the data file whenever its modification time changes.
func watchData(chart *donut.Chart, path string, every time.Duration, done chan struct{}) {
	var last time.Time
	if fi, err := os.Stat(path); err == nil {
		last = fi.ModTime()
	}
	tick := time.NewTicker(every)
	defer tick.Stop()
	for {
		select {
		case <-done:
			return
		case <-tick.C:
			fi, err := os.Stat(path)
			if err != nil || !fi.ModTime().After(last) {
				continue
			}
			last = fi.ModTime()
			if err := reloadData(chart, path); err != nil {
				log.Warn("reload failed", zap.String("file", path), zap.Error(err))
				continue
			}
			log.Info("data reloaded", zap.String("file", path))
		}
	}
}
