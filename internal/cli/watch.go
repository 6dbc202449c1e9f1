package cli

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// debounce is the quiet period after a change before regenerating.
const debounce = 200 * time.Millisecond

// specExts are the extensions of the files triggering a run.
var specExts = map[string]bool{".yaml": true, ".yml": true, ".json": true, ".cue": true}

// watch runs fn once, then again after every change of a spec file under
// the directories of files, until ctx is done. Runs never overlap.
func watch(ctx context.Context, log *zap.Logger, files []string, target string, fn func(context.Context)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	var skip string
	if target != "" {
		skip, _ = filepath.Abs(target)
	}
	for _, dir := range watchDirs(files) {
		if _, err := addTree(w, dir, skip); err != nil {
			return err
		}
	}

	fn(ctx)
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) && !strings.HasPrefix(filepath.Base(ev.Name), ".") {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					found, err := addTree(w, ev.Name, skip)
					if err != nil {
						log.Warn("watch directory", zap.String("dir", ev.Name), zap.Error(err))
					}
					if found {
						timer.Reset(debounce)
					}
					continue
				}
			}
			if !specExts[strings.ToLower(filepath.Ext(ev.Name))] || ev.Op == fsnotify.Chmod {
				continue
			}
			log.Debug("spec changed", zap.String("file", ev.Name), zap.Stringer("op", ev.Op))
			timer.Reset(debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", zap.Error(err))
		case <-timer.C:
			fn(ctx)
		}
	}
}

// addTree watches dir and its subdirectories, except skip and hidden ones.
// It reports whether the tree already holds spec files.
func addTree(w *fsnotify.Watcher, dir, skip string) (bool, error) {
	found := false
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			found = found || specExts[strings.ToLower(filepath.Ext(p))]
			return nil
		}
		if abs, _ := filepath.Abs(p); abs == skip || strings.HasPrefix(d.Name(), ".") && p != dir {
			return filepath.SkipDir
		}
		return w.Add(p)
	})
	return found, err
}

// watchDirs returns the distinct directories of files, dropping the ones
// nested in another.
func watchDirs(files []string) []string {
	var dirs []string
	for _, f := range files {
		dir, err := filepath.Abs(filepath.Dir(f))
		if err != nil {
			continue
		}
		dirs = append(dirs, dir)
	}
	var out []string
	for i, d := range dirs {
		nested := false
		for j, o := range dirs {
			if i != j && (d == o && j < i || strings.HasPrefix(d, o+string(filepath.Separator))) {
				nested = true
				break
			}
		}
		if !nested {
			out = append(out, d)
		}
	}
	return out
}
