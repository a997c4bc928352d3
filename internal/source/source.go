// Package source loads event documents from directories on disk.
package source

import (
	"fmt"
	"os"
	"path/filepath"

	"agendacal/internal/event"
	"agendacal/internal/header"
	"agendacal/internal/model"
)

// LoadFile parses and builds the single event document at path.
func LoadFile(path string) (model.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	fields, err := header.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	ev, err := event.Build(fields)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ev, nil
}

// LoadDir loads every regular file in dir as one event document, in
// directory-name order. The first failing document aborts the load: the
// agenda must never silently omit an event because its file was malformed.
func LoadDir(dir string) ([]model.Event, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	events := make([]model.Event, 0, len(entries))
	for _, entry := range entries {
		// Only regular files are documents; subdirectories, symlinks and
		// other special entries are skipped.
		if !entry.Type().IsRegular() {
			continue
		}
		ev, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

// LoadDirs loads all given directories and concatenates their events in
// argument order.
func LoadDirs(dirs []string) ([]model.Event, error) {
	var events []model.Event
	for _, dir := range dirs {
		evs, err := LoadDir(dir)
		if err != nil {
			return nil, err
		}
		events = append(events, evs...)
	}
	return events, nil
}
