package solverlog

import (
	"bufio"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/foamworks/foamctl/internal/ctxlog"
)

const pollInterval = 250 * time.Millisecond

// Follow streams complete lines appended to path until ctx is done.
// Reading starts at the current end of file. Change notification uses
// fsnotify on the log's directory with a polling fallback, so a
// filesystem without watch support still works. The channel is closed
// when ctx is cancelled.
func Follow(ctx context.Context, path string) (<-chan string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if _, err := f.Seek(0, io.SeekEnd); err != nil {
		f.Close()
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		ctxlog.FromContext(ctx).Debug("log watcher unavailable, polling only", "error", err)
		watcher = nil
	} else if err := watcher.Add(filepath.Dir(path)); err != nil {
		ctxlog.FromContext(ctx).Debug("log watch failed, polling only", "path", path, "error", err)
		watcher.Close()
		watcher = nil
	}

	lines := make(chan string)
	go follow(ctx, f, watcher, filepath.Clean(path), lines)
	return lines, nil
}

func follow(ctx context.Context, f *os.File, watcher *fsnotify.Watcher, path string, lines chan<- string) {
	defer close(lines)
	defer f.Close()
	if watcher != nil {
		defer watcher.Close()
	}

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	reader := bufio.NewReader(f)
	var partial strings.Builder

	// drain emits every complete line currently available, keeping a
	// trailing unterminated fragment for the next round.
	drain := func() bool {
		for {
			chunk, err := reader.ReadString('\n')
			if err != nil {
				partial.WriteString(chunk)
				return true
			}
			partial.WriteString(chunk)
			line := strings.TrimRight(partial.String(), "\r\n")
			partial.Reset()
			select {
			case lines <- line:
			case <-ctx.Done():
				return false
			}
		}
	}

	for {
		if !drain() {
			return
		}

		if watcher == nil {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			continue
		}

		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				watcher = nil
				continue
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				watcher = nil
				continue
			}
			ctxlog.FromContext(ctx).Debug("log watcher error", "error", err)
		case <-ticker.C:
		}
	}
}
