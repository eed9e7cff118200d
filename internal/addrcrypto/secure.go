// Package addrcrypto holds memory-hygiene helpers for seed and key material.
package addrcrypto

import (
	"runtime"
	"sync"
)

// SecureBytes wraps a sensitive buffer that is mlocked when the platform
// allows it and zeroed on Destroy.
type SecureBytes struct {
	data   []byte
	locked bool
	mu     sync.Mutex
}

// NewSecureBytes allocates a zeroed buffer of the given size.
// Failing to lock memory is not an error.
func NewSecureBytes(size int) *SecureBytes {
	sb := &SecureBytes{data: make([]byte, size)}
	sb.locked = mlock(sb.data)

	runtime.SetFinalizer(sb, func(s *SecureBytes) {
		s.Destroy()
	})

	return sb
}

// SecureBytesFromSlice copies data into a new SecureBytes and zeroes the source.
func SecureBytesFromSlice(data []byte) *SecureBytes {
	sb := NewSecureBytes(len(data))
	copy(sb.data, data)
	Zero(data)
	return sb
}

// Bytes returns the underlying buffer, or nil after Destroy.
func (s *SecureBytes) Bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data
}

// IsLocked reports whether the buffer is mlocked.
func (s *SecureBytes) IsLocked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locked
}

// Len returns the buffer length, 0 after Destroy.
func (s *SecureBytes) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}

// Destroy zeroes and unlocks the buffer. Safe to call more than once.
func (s *SecureBytes) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		return
	}

	Zero(s.data)

	if s.locked {
		munlock(s.data)
		s.locked = false
	}

	s.data = nil
	runtime.SetFinalizer(s, nil)
}

// Zero overwrites data with zero bytes.
func Zero(data []byte) {
	for i := range data {
		data[i] = 0
	}
}
