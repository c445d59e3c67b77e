package prefabs

import (
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeKind tells the game what a changed file feeds.
type ChangeKind int

const (
	ChangeOther ChangeKind = iota
	ChangeSettings
	ChangeScript
)

// Change is one debounced file modification.
type Change struct {
	Path string
	Kind ChangeKind
}

// Classify maps a path under prefabs/ to the data it holds.
func Classify(path string) ChangeKind {
	base := strings.ToLower(filepath.Base(path))
	switch {
	case base == "settings.yaml" || base == "settings.yml":
		return ChangeSettings
	case filepath.Ext(base) == ".tengo":
		return ChangeScript
	default:
		return ChangeOther
	}
}

// Watcher reports yaml and tengo files changed on disk. Changes and Errors
// are closed once the watcher stops.
type Watcher struct {
	fs      *fsnotify.Watcher
	Changes chan Change
	Errors  chan error
	done    chan struct{}
	stop    sync.Once
}

// debounce drops repeated writes to the same file; editors save in bursts.
const debounce = 100 * time.Millisecond

func NewWatcher(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:      fw,
		Changes: make(chan Change, 16),
		Errors:  make(chan error, 1),
		done:    make(chan struct{}),
	}
	go w.loop()
	slog.Debug("prefabs: watching", "dirs", dirs)
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.stop.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) loop() {
	defer close(w.Changes)
	defer close(w.Errors)

	seen := make(map[string]time.Time)
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if !watched(ev.Name) {
				continue
			}
			now := time.Now()
			if at, ok := seen[ev.Name]; ok && now.Sub(at) < debounce {
				continue
			}
			seen[ev.Name] = now

			select {
			case w.Changes <- Change{Path: ev.Name, Kind: Classify(ev.Name)}:
			case <-w.done:
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
				slog.Debug("prefabs: watcher error dropped", "err", err)
			}
		case <-w.done:
			return
		}
	}
}

func watched(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".tengo":
		return true
	}
	return false
}
