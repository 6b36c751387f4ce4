package source

import (
	"fmt"
	"os"
	"sync"
	"unsafe"
)

// mmapThreshold is the file size below which plain reads beat the
// syscall cost of mapping.
const mmapThreshold = 1 << 14

// Loader reads source files for registration in a SourceMap. Large
// files are memory-mapped where the platform supports it; the mappings
// stay alive until Close, matching the lifetime of the parse session
// that borrows the contents.
type Loader struct {
	mu     sync.Mutex
	mapped [][]byte
}

// NewLoader returns a Loader with no open mappings.
func NewLoader() *Loader { return &Loader{} }

// ReadFile returns the contents of path. The returned string may alias
// a memory mapping owned by the Loader and is only valid until Close.
func (l *Loader) ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", err
	}
	if size := info.Size(); size >= mmapThreshold && size <= int64(^uint32(0)) {
		if data, ok := mmapFile(f, int(size)); ok {
			l.mu.Lock()
			l.mapped = append(l.mapped, data)
			l.mu.Unlock()
			return unsafe.String(&data[0], len(data)), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Close releases every mapping handed out by ReadFile. Strings returned
// for mapped files must not be used afterwards.
func (l *Loader) Close() error {
	l.mu.Lock()
	mapped := l.mapped
	l.mapped = nil
	l.mu.Unlock()

	var firstErr error
	for _, data := range mapped {
		if err := munmapFile(data); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("unmap source file: %w", err)
		}
	}
	return firstErr
}
