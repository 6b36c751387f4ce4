package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce coalesces editor save bursts into one re-parse.
const watchDebounce = 100 * time.Millisecond

// watch re-parses whenever a source file under the watched directories
// changes. It blocks until the watcher closes.
func (d *driver) watch() error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	inputs, err := d.resolveInputs()
	if err != nil {
		return err
	}

	// Editors replace files on save, which drops a file-level watch,
	// so the parent directories are watched instead.
	dirs := make(map[string]bool)
	for _, path := range inputs {
		dirs[filepath.Dir(path)] = true
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	printInfo("Watch", fmt.Sprintf("watching %d directories for %s changes", len(dirs), d.ext()))

	// The timer starts disarmed; events arm it.
	debounce := time.NewTimer(watchDebounce)
	if !debounce.Stop() {
		<-debounce.C
	}

	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(ev.Name, d.ext()) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			debounce.Reset(watchDebounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			printError("Watch", err)

		case <-debounce.C:
			if _, err := d.run(); err != nil {
				printError("Parse", err)
			}
		}
	}
}
