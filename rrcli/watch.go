package rrcli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"oss.terrastruct.com/util-go/xmain"
)

type watcherOpts struct {
	options
	outputPath string
}

type watcher struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	ms *xmain.State
	watcherOpts

	compileCh chan struct{}

	fw *fsnotify.Watcher

	closeOnce sync.Once

	errMu sync.Mutex
	err   error
}

func newWatcher(ctx context.Context, ms *xmain.State, opts watcherOpts) (*watcher, error) {
	ctx, cancel := context.WithCancel(ctx)

	w := &watcher{
		ctx:    ctx,
		cancel: cancel,

		ms:          ms,
		watcherOpts: opts,

		compileCh: make(chan struct{}, 1),
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		cancel()
		return nil, err
	}
	w.fw = fw
	return w, nil
}

func (w *watcher) run() error {
	defer w.close()

	w.goFunc(w.watchLoop)
	w.goFunc(w.compileLoop)

	w.wg.Wait()
	w.close()
	if errors.Is(w.err, context.Canceled) {
		return nil
	}
	return w.err
}

func (w *watcher) close() {
	w.closeOnce.Do(func() {
		w.cancel()
		err := w.fw.Close()
		w.setErr(err)
	})
}

func (w *watcher) setErr(err error) {
	w.errMu.Lock()
	if w.err == nil {
		w.err = err
	}
	w.errMu.Unlock()
}

func (w *watcher) goFunc(fn func(context.Context) error) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer w.cancel()

		err := fn(w.ctx)
		w.setErr(err)
	}()
}

// watchLoop requests a regeneration whenever the source changes. Editors often emit a
// burst of events per save so events are coalesced for 16ms, and the file's mtime is
// polled in case an event was missed.
func (w *watcher) watchLoop(ctx context.Context) error {
	lastModified := make(map[string]time.Time)

	mt, err := w.ensureAddWatch(ctx, w.source)
	if err != nil {
		return err
	}
	lastModified[w.source] = mt
	w.ms.Log.Info.Printf("generating %v...", w.ms.HumanPath(w.outputPath))
	w.requestCompile()

	eatBurstTimer := time.NewTimer(0)
	<-eatBurstTimer.C
	pollTicker := time.NewTicker(time.Second * 10)
	defer pollTicker.Stop()

	changed := make(map[string]struct{})

	for {
		select {
		case <-pollTicker.C:
			missedChanges := false
			for _, watched := range w.fw.WatchList() {
				mt, err := w.ensureAddWatch(ctx, watched)
				if err != nil {
					return err
				}
				if mt2, ok := lastModified[watched]; !ok || !mt.Equal(mt2) {
					missedChanges = true
					lastModified[watched] = mt
				}
			}
			if missedChanges {
				w.requestCompile()
			}
		case ev, ok := <-w.fw.Events:
			if !ok {
				return errors.New("fsnotify watcher closed")
			}
			w.ms.Log.Debug.Printf("received file system event %v", ev)
			mt, err := w.ensureAddWatch(ctx, ev.Name)
			if err != nil {
				return err
			}
			if ev.Op == fsnotify.Chmod {
				if mt.Equal(lastModified[ev.Name]) {
					// Benign Chmod.
					// See https://github.com/fsnotify/fsnotify/issues/15
					continue
				}
			}
			lastModified[ev.Name] = mt
			changed[ev.Name] = struct{}{}
			eatBurstTimer.Reset(time.Millisecond * 16)
		case <-eatBurstTimer.C:
			var changedList []string
			for k := range changed {
				changedList = append(changedList, k)
				delete(changed, k)
			}
			if len(changedList) == 0 {
				continue
			}
			sort.Strings(changedList)
			changedStr := w.ms.HumanPath(changedList[0])
			for i := 1; i < len(changedList); i++ {
				changedStr += fmt.Sprintf(", %s", w.ms.HumanPath(changedList[i]))
			}
			w.ms.Log.Info.Printf("detected change in %s: regenerating...", changedStr)
			w.requestCompile()
		case err, ok := <-w.fw.Errors:
			if !ok {
				return errors.New("fsnotify watcher closed")
			}
			w.ms.Log.Error.Printf("fsnotify error: %v", err)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (w *watcher) requestCompile() {
	select {
	case w.compileCh <- struct{}{}:
	default:
	}
}

// ensureAddWatch retries until path can be watched. Editors that save by renaming
// leave a short window where the file does not exist.
func (w *watcher) ensureAddWatch(ctx context.Context, path string) (time.Time, error) {
	interval := time.Millisecond * 16
	tc := time.NewTimer(0)
	<-tc.C
	for {
		mt, err := w.addWatch(path)
		if err == nil {
			return mt, nil
		}
		if interval >= time.Second {
			w.ms.Log.Error.Printf("failed to watch %q: %v (retrying in %v)", w.ms.HumanPath(path), err, interval)
		}

		tc.Reset(interval)
		select {
		case <-tc.C:
			if interval < time.Second {
				interval = time.Second
			}
			if interval < time.Second*16 {
				interval *= 2
			}
		case <-ctx.Done():
			return time.Time{}, ctx.Err()
		}
	}
}

func (w *watcher) addWatch(path string) (time.Time, error) {
	err := w.fw.Add(path)
	if err != nil {
		return time.Time{}, err
	}
	d, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return d.ModTime(), nil
}

// compileLoop regenerates on request. Failures are reported and the previous output is
// left in place until the source is fixed.
func (w *watcher) compileLoop(ctx context.Context) error {
	first := true
	for {
		select {
		case <-w.compileCh:
		case <-ctx.Done():
			return ctx.Err()
		}

		prefix := ""
		if !first {
			prefix = "re"
		}
		first = false

		start := time.Now()
		err := generate(ctx, w.ms, w.options, w.outputPath)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			w.ms.Log.Error.Printf("failed to %sgenerate %s: %v", prefix, w.ms.HumanPath(w.outputPath), err)
			continue
		}
		w.ms.Log.Success.Printf("successfully %sgenerated %s in %s", prefix, w.ms.HumanPath(w.outputPath), time.Since(start))
	}
}
