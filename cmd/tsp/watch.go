package main

import (
	"context"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 250 * time.Millisecond

// watchAndGenerate regenerates output whenever the input file changes. The
// watch is on the containing directory because editors typically replace the
// file instead of writing it in place. Generation errors are logged and the
// watch keeps running; only watcher failures stop it.
func watchAndGenerate(filename, outputPath, outputFormat, goPackage string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	absFile, err := filepath.Abs(filename)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(absFile)); err != nil {
		return err
	}

	generate := func() {
		if err := generateOnce(filename, outputPath, outputFormat, goPackage); err != nil {
			log.Errorf("generate: %s", err.Error())
		} else {
			log.Noticef("regenerated from %s", filename)
		}
	}
	generate()

	timer := time.NewTimer(time.Hour)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != absFile {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename|fsnotify.Chmod) == 0 {
				continue
			}
			if pending {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
			}
			timer.Reset(watchDebounce)
			pending = true
		case <-timer.C:
			if pending {
				pending = false
				generate()
			}
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return watchErr
		}
	}
}
