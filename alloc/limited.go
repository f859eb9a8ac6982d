package alloc

import "unsafe"

// Limited fails every request that would take the total past Budget.
type Limited struct {
	A      Allocator
	Budget int
	Used   int
}

func (l *Limited) Alloc(ln int) unsafe.Pointer {
	if ln <= 0 || l.Used+ln > l.Budget {
		return nil
	}
	p := l.A.Alloc(ln)
	if p != nil {
		l.Used += ln
	}
	return p
}
