//go:build !unix

package source

import "os"

func mmapFile(f *os.File, size int) ([]byte, bool) { return nil, false }

func munmapFile(data []byte) error { return nil }
