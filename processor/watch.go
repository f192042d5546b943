package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// WatchDebounce is how long Watch waits after the last change to the input
// before regenerating. Spreadsheet applications save in several steps.
var WatchDebounce = 300 * time.Millisecond

// Watch regenerates job whenever its input file changes, until ctx is done.
// The report is generated once before watching starts; failures while
// watching are logged and do not stop the loop.
func (p *Processor) Watch(ctx context.Context, job Job) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors often replace the file instead of writing it.
	dir := filepath.Dir(job.Input)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	input := filepath.Clean(job.Input)
	log := p.logger.With(zap.String("report", job.Name), zap.String("input", input))

	if err := p.ProcessFile(ctx, job); err != nil {
		log.Error("initial build failed", zap.Error(err))
	}
	log.Info("watching for changes")

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != input {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			log.Debug("input changed", zap.Stringer("op", ev.Op))
			if timer == nil {
				timer = time.NewTimer(WatchDebounce)
			} else {
				timer.Reset(WatchDebounce)
			}
			fire = timer.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", zap.Error(err))

		case <-fire:
			fire = nil
			if err := p.ProcessFile(ctx, job); err != nil {
				log.Error("rebuild failed", zap.Error(err))
			}
		}
	}
}
