package alloc

import (
	"log"
	"sync"
	"unsafe"
)

// Simple is a bump allocator. Memory it returns is never reclaimed.
type Simple struct {
	Base
	sync.Mutex
	Cur        *Chunk
	CurOff     uintptr
	TotalAlloc int

	// Log, when set, traces every chunk and allocation.
	Log string
}

func (s *Simple) Alloc(ln int) unsafe.Pointer {
	s.Lock()
	defer s.Unlock()
	return s.alloc(ln)
}

func (s *Simple) alloc(ln int) unsafe.Pointer {
	if ln <= 0 || ln > ChunkSize {
		return nil
	}
	n := uintptr(ln+3) &^ 3
	if s.Cur == nil || s.CurOff+n > ChunkSize {
		chunk, err := s.ExtendChunks()
		if err != nil {
			if s.Log != "" {
				log.Printf("extend chunks %s: %v", s.Log, err)
			}
			return nil
		}
		s.Cur = chunk
		s.CurOff = 0
		if s.Log != "" {
			log.Printf("%p chunk %s", unsafe.Pointer(chunk), s.Log)
		}
	}
	res := unsafe.Pointer(&s.Cur[s.CurOff])
	s.CurOff += n
	s.TotalAlloc += int(n)
	if s.Log != "" {
		log.Printf("%p alloc %d %s", res, n, s.Log)
	}
	return res
}
