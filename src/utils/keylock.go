package utils

import "sync"

// KeyLock provides one mutex per string key so that read-modify-write
// sequences on the same key never interleave, while unrelated keys
// proceed in parallel. Locks are created on first use and kept for the
// lifetime of the process; the key space here (user id + fund code) is
// small enough that no eviction is needed.
type KeyLock struct {
	mutex sync.Mutex
	locks map[string]*sync.Mutex
}

func NewKeyLock() *KeyLock {
	return &KeyLock{locks: make(map[string]*sync.Mutex)}
}

func (k *KeyLock) Lock(key string) {
	k.mutex.Lock()
	lock, ok := k.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		k.locks[key] = lock
	}
	k.mutex.Unlock()
	lock.Lock()
}

func (k *KeyLock) Unlock(key string) {
	k.mutex.Lock()
	lock, ok := k.locks[key]
	k.mutex.Unlock()
	if ok {
		lock.Unlock()
	}
}
