package marionette

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher is the authoring-mode file source: it watches asset folders and
// emits batches of changed raw files on a fixed poll interval, ready for
// Stage.IngestFiles. Only files with recognized asset extensions are
// reported; changes landing within the same interval coalesce into one
// batch per file.
//
// Batches arrive on a goroutine-fed channel; drain them from the frame loop
// and hand them to IngestFiles there; the Stage itself stays
// single-threaded.
type Watcher struct {
	fsw      *fsnotify.Watcher
	interval time.Duration

	Batches chan []AssetEntry
	Errors  chan error

	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher watches the given directories, emitting a batch of changed
// asset files every interval. A zero interval defaults to 250ms.
func NewWatcher(interval time.Duration, dirs ...string) (*Watcher, error) {
	if interval <= 0 {
		interval = 250 * time.Millisecond
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fsw:      fsw,
		interval: interval,
		Batches:  make(chan []AssetEntry, 4),
		Errors:   make(chan error, 1),
		closeCh:  make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher and closes its channels. Safe to call twice.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.fsw.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Batches)
	defer close(w.Errors)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	dirty := make(map[string]struct{})
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if classifyAsset(event.Name) == assetUnknown {
				continue
			}
			dirty[event.Name] = struct{}{}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-ticker.C:
			if len(dirty) == 0 {
				continue
			}
			batch := w.readBatch(dirty)
			dirty = make(map[string]struct{})
			if len(batch) == 0 {
				continue
			}
			select {
			case w.Batches <- batch:
			case <-w.closeCh:
				return
			}
		case <-w.closeCh:
			return
		}
	}
}

// readBatch loads the content of each dirty path. Files that vanished
// between the event and the tick are skipped.
func (w *Watcher) readBatch(dirty map[string]struct{}) []AssetEntry {
	batch := make([]AssetEntry, 0, len(dirty))
	for path := range dirty {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		batch = append(batch, AssetEntry{Name: filepath.Base(path), Data: data})
	}
	return batch
}
