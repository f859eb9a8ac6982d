package alloc

import (
	"unsafe"

	"github.com/modern-go/reflect2"
)

// Allocator hands out raw memory the garbage collector does not track.
// Alloc returns nil when the request cannot be satisfied.
type Allocator interface {
	Alloc(ln int) unsafe.Pointer
}

// Bind stores p into the pointer variable ptr points at, so
//
//	var cell *int32
//	Bind(p, &cell)
//
// makes cell address p.
func Bind(p unsafe.Pointer, ptr interface{}) {
	if p == nil {
		return
	}
	*(*unsafe.Pointer)(reflect2.PtrOf(ptr)) = p
}
