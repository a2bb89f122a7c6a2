package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ReloadDebounce is how long a config file must stay quiet after a change
// before it is re-read. Editors often write a file in several steps.
const ReloadDebounce = 100 * time.Millisecond

// Watcher re-parses a lander config file whenever it changes and delivers
// the result on Configs. Parse failures go to Errors and the previous
// config stays in effect. Both channels are closed once the watcher stops.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	preset  DifficultyPreset

	Configs chan LanderConfig
	Errors  chan error

	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher watches file. The directory is watched rather than the file
// itself so that editors replacing the file by rename are still seen.
// preset, when set, is re-applied to every reloaded config.
func NewWatcher(file string, preset DifficultyPreset) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(file)
	if err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		watcher: w,
		path:    abs,
		preset:  preset,
		Configs: make(chan LanderConfig, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Path returns the absolute path of the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher and waits for it to release its channels.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	defer close(w.Errors)
	defer close(w.Configs)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(ReloadDebounce)
			} else {
				timer.Reset(ReloadDebounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendErr(err)
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) reload() {
	data, err := os.ReadFile(w.path)
	if err != nil {
		// A rename in progress; the create that follows triggers another reload.
		if os.IsNotExist(err) {
			return
		}
		w.sendErr(fmt.Errorf("failed to read config %s: %w", w.path, err))
		return
	}
	cfg, err := ParseLander(data)
	if err != nil {
		w.sendErr(fmt.Errorf("failed to parse config %s: %w", w.path, err))
		return
	}
	ApplyLanderPreset(&cfg, w.preset)

	// Only the newest config matters to the consumer.
	select {
	case <-w.Configs:
	default:
	}
	select {
	case w.Configs <- cfg:
	case <-w.closeCh:
	}
}

func (w *Watcher) sendErr(err error) {
	select {
	case w.Errors <- err:
	case <-w.closeCh:
	default:
		// Consumer is behind; drop.
	}
}
