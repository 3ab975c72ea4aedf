package utils

import (
	"sort"
	"sync"
)

// KeyedMutex serializes work per integer key. It backs the per-item exclusivity of
// stock mutation: two transactions touching the same inventory item must not
// interleave their read-modify-write, while transactions on different items
// proceed independently.
//
// Mutexes are created on first use and never removed; the key space (inventory
// item ids) is small enough that this does not matter.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[int]*sync.Mutex
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[int]*sync.Mutex)}
}

func (km *KeyedMutex) lockFor(key int) *sync.Mutex {
	km.mu.Lock()
	defer km.mu.Unlock()
	l, ok := km.locks[key]
	if !ok {
		l = &sync.Mutex{}
		km.locks[key] = l
	}
	return l
}

// Lock acquires the mutexes for all given keys and returns the release function.
// Keys are deduplicated and acquired in ascending order so that two callers
// locking overlapping key sets cannot deadlock.
func (km *KeyedMutex) Lock(keys ...int) (release func()) {
	unique := UniqueInts(keys)
	sort.Ints(unique)

	held := make([]*sync.Mutex, 0, len(unique))
	for _, k := range unique {
		l := km.lockFor(k)
		l.Lock()
		held = append(held, l)
	}
	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}

func UniqueInts(values []int) []int {
	seen := make(map[int]struct{}, len(values))
	out := make([]int, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
