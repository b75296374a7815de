package io

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/rjeczalik/notify"
)

func ReadFileToString(filePath string) (string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil { return "", err }
	return string(content), nil
}

func WriteStringToFile(filePath string, content string) error {
	return os.WriteFile(filePath, []byte(content), 0644)
}

// DirWatcher reports filesystem events under a directory. The tui uses
// it to flag the open file when something else rewrites it.
type DirWatcher struct {
	dirPath string
	events  chan notify.EventInfo
	mu      sync.Mutex
}

func NewDirWatcher(dirPath string) *DirWatcher {
	abs, _ := filepath.Abs(dirPath)
	return &DirWatcher{dirPath: abs}
}

func (dw *DirWatcher) StartWatch(onUpdate func(e notify.EventInfo)) error {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	dw.events = make(chan notify.EventInfo, 1)
	err := notify.Watch(dw.dirPath, dw.events, notify.Write, notify.Rename, notify.Remove)
	if err != nil { return err }

	go func() {
		for e := range dw.events {
			onUpdate(e)
		}
	}()
	return nil
}

func (dw *DirWatcher) Stop() {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	if dw.events == nil { return }
	notify.Stop(dw.events)
	close(dw.events)
	dw.events = nil
}
