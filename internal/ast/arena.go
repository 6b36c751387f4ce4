package ast

import (
	"reflect"
)

// Arena owns the nodes of one parse. Nodes are bump-allocated into
// per-type chunks and freed together when the arena becomes
// unreachable; individual nodes are never freed. An arena is not safe
// for concurrent use, each parse owns its own.
type Arena struct {
	buckets map[reflect.Type]chunkList
	nodes   uint64
	chunks  int
}

// chunkList is the untyped view of a bucket, enough for stats
type chunkList interface {
	count() int
}

const (
	firstChunkCap = 64
	maxChunkCap   = 4096
)

// bucket holds the chunks of a single node type. A chunk is appended
// to only while below capacity, so addresses handed out stay valid.
type bucket[T any] struct {
	chunks [][]T
}

func (b *bucket[T]) count() int {
	n := 0
	for _, c := range b.chunks {
		n += len(c)
	}
	return n
}

// NewArena creates an empty arena
func NewArena() *Arena {
	return &Arena{buckets: make(map[reflect.Type]chunkList)}
}

// ArenaStats reports allocation counters for one arena
type ArenaStats struct {
	Nodes  uint64 // nodes allocated
	Chunks int    // backing chunks created
	Types  int    // distinct node types seen
}

// Stats returns the arena's allocation counters
func (a *Arena) Stats() ArenaStats {
	return ArenaStats{Nodes: a.nodes, Chunks: a.chunks, Types: len(a.buckets)}
}

// Alloc returns a pointer to a zeroed T owned by the arena
func Alloc[T any](a *Arena) *T {
	b := bucketOf[T](a)
	if n := len(b.chunks); n == 0 || len(b.chunks[n-1]) == cap(b.chunks[n-1]) {
		capacity := firstChunkCap
		if n > 0 {
			capacity = cap(b.chunks[n-1]) * 2
			if capacity > maxChunkCap {
				capacity = maxChunkCap
			}
		}
		b.chunks = append(b.chunks, make([]T, 0, capacity))
		a.chunks++
	}
	last := len(b.chunks) - 1
	var zero T
	b.chunks[last] = append(b.chunks[last], zero)
	a.nodes++
	return &b.chunks[last][len(b.chunks[last])-1]
}

// NewIn copies v into the arena and returns the owned pointer
func NewIn[T any](a *Arena, v T) *T {
	p := Alloc[T](a)
	*p = v
	return p
}

func bucketOf[T any](a *Arena) *bucket[T] {
	key := reflect.TypeOf((*T)(nil)).Elem()
	if b, ok := a.buckets[key]; ok {
		return b.(*bucket[T])
	}
	b := &bucket[T]{}
	a.buckets[key] = b
	return b
}
