// Package css-loader.go loads stylesheet files from disk and keeps them
// live: paths are discovered through glob patterns and watched for
// changes, so edits to .tcss files restyle the running application.

package schirmwerk

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// StylesheetLoader resolves glob patterns to stylesheet files, loads them
// into an app and optionally watches them for changes.
type StylesheetLoader struct {
	app      *App
	patterns []string
	watcher  *fsnotify.Watcher
	done     chan struct{}
}

// LoadStylesheets loads every file matching the patterns (doublestar
// globs such as "styles/**/*.tcss") into the app's stylesheet, in sorted
// path order for deterministic cascade positions.
func LoadStylesheets(app *App, patterns ...string) (*StylesheetLoader, error) {
	loader := &StylesheetLoader{app: app, patterns: patterns}
	paths, err := loader.resolve()
	if err != nil {
		return nil, err
	}
	for _, path := range paths {
		if err := loader.load(path); err != nil {
			return nil, err
		}
	}
	return loader, nil
}

func (l *StylesheetLoader) resolve() ([]string, error) {
	seen := map[string]struct{}{}
	var paths []string
	for _, pattern := range l.patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad stylesheet pattern %q: %w", pattern, err)
		}
		for _, match := range matches {
			if _, ok := seen[match]; ok {
				continue
			}
			seen[match] = struct{}{}
			paths = append(paths, match)
		}
	}
	sort.Strings(paths)
	return paths, nil
}

func (l *StylesheetLoader) load(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("stylesheet %s: %w", path, err)
	}
	l.app.SetFileCSS(path, string(source))
	return nil
}

// Watch starts watching the loaded files' directories and reloads a file
// whenever it changes. Close stops the watcher.
func (l *StylesheetLoader) Watch() error {
	if l.watcher != nil {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	l.watcher = watcher
	l.done = make(chan struct{})

	paths, err := l.resolve()
	if err != nil {
		watcher.Close()
		l.watcher = nil
		return err
	}
	dirs := map[string]struct{}{}
	for _, path := range paths {
		dirs[filepath.Dir(path)] = struct{}{}
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			l.app.Console().Add(DiagWarning, "css", "watch %s: %v", dir, err)
		}
	}

	go l.run()
	return nil
}

func (l *StylesheetLoader) run() {
	for {
		select {
		case <-l.done:
			return
		case event, ok := <-l.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !l.matches(event.Name) {
				continue
			}
			source, err := os.ReadFile(event.Name)
			if err != nil {
				l.app.Console().Add(DiagWarning, "css", "reload %s: %v", event.Name, err)
				continue
			}
			// Stylesheet replacement must run on the executor.
			path := event.Name
			text := string(source)
			if target := l.executorTarget(); target != nil {
				l.app.Post(target, &CallbackMessage{Fn: func() {
					l.app.SetFileCSS(path, text)
				}})
			}
		case err, ok := <-l.watcher.Errors:
			if !ok {
				return
			}
			l.app.Console().Add(DiagWarning, "css", "watcher: %v", err)
		}
	}
}

func (l *StylesheetLoader) matches(path string) bool {
	for _, pattern := range l.patterns {
		if ok, err := doublestar.PathMatch(filepath.ToSlash(pattern), filepath.ToSlash(path)); err == nil && ok {
			return true
		}
	}
	return false
}

func (l *StylesheetLoader) executorTarget() Widget {
	if screen := l.app.TopScreen(); screen != nil {
		return screen
	}
	return nil
}

// Close stops watching.
func (l *StylesheetLoader) Close() {
	if l.watcher != nil {
		close(l.done)
		l.watcher.Close()
		l.watcher = nil
	}
}
