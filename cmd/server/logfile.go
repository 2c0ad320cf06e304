package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// cappedFile is an append-only log file bounded to max bytes. When a write
// pushes it past max, only the newest keep bytes survive.
type cappedFile struct {
	mu   sync.Mutex
	file *os.File
	max  int64
	keep int64
}

func openCappedFile(path string, limit int64) (*cappedFile, error) {
	if limit <= 0 {
		return nil, errors.New("log size cap must be positive")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	c := &cappedFile{file: file, max: limit, keep: limit * 5 / 6}
	if err := c.enforceCap(); err != nil {
		file.Close()
		return nil, err
	}
	return c, nil
}

func (c *cappedFile) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, err := c.file.Write(p)
	if err != nil {
		return n, err
	}
	return n, c.enforceCap()
}

func (c *cappedFile) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.file.Close()
}

func (c *cappedFile) enforceCap() error {
	info, err := c.file.Stat()
	if err != nil {
		return err
	}
	size := info.Size()
	if size <= c.max {
		return nil
	}

	tail := make([]byte, c.keep)
	n, err := c.file.ReadAt(tail, size-c.keep)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	if err := c.file.Truncate(0); err != nil {
		return err
	}
	// O_APPEND writes land at the new end of file.
	_, err = c.file.Write(tail[:n])
	return err
}
