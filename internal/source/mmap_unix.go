//go:build unix

package source

import (
	"os"

	"golang.org/x/sys/unix"
)

// mmapFile maps size bytes of f read-only. Returns ok=false when the
// platform refuses the mapping, in which case the caller falls back to
// a plain read.
func mmapFile(f *os.File, size int) ([]byte, bool) {
	if size == 0 {
		return nil, false
	}
	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, false
	}
	return data, true
}

func munmapFile(data []byte) error {
	return unix.Munmap(data)
}
