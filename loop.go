package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"
	"unsafe"

	"github.com/funny-falcon/heapcell/alloc"
)

// CellAlloc is where the heap cell comes from when Loop.Alloc is unset.
var CellAlloc alloc.Simple

const cellSize = int(unsafe.Sizeof(int32(0)))

// Loop owns the one heap cell of the process. The cell is deliberately never
// released: it lives in mmap'd memory the collector does not see, and nothing
// unmaps it before the process is killed.
type Loop struct {
	Alloc    alloc.Allocator
	Out      io.Writer
	Pid      int
	Interval time.Duration
	Sleep    func(time.Duration)
	Fatal    func(v ...interface{})

	cell *int32
}

func (l *Loop) init() {
	if l.Alloc == nil {
		l.Alloc = &CellAlloc
	}
	if l.Out == nil {
		l.Out = os.Stdout
	}
	if l.Pid == 0 {
		l.Pid = os.Getpid()
	}
	if l.Interval == 0 {
		l.Interval = time.Second
	}
	if l.Sleep == nil {
		l.Sleep = time.Sleep
	}
	if l.Fatal == nil {
		l.Fatal = log.Fatal
	}
}

// Start allocates the cell, zeroes it and reports its address.
// A failed allocation goes straight to Fatal.
func (l *Loop) Start() {
	l.init()
	alloc.Bind(l.Alloc.Alloc(cellSize), &l.cell)
	if l.cell == nil {
		l.Fatal("alloc: cannot allocate heap cell")
		return
	}
	*l.cell = 0
	// Full pointer width, at least 8 digits.
	fmt.Fprintf(l.Out, "(%d) memory address of p: %08x\n", l.Pid, l.Addr())
}

// Step waits one interval, bumps the cell and reports it.
// The value wraps silently past math.MaxInt32.
func (l *Loop) Step() {
	l.Sleep(l.Interval)
	*l.cell++
	fmt.Fprintf(l.Out, "(%d) p: %d\n", l.Pid, *l.cell)
}

// Run never returns once the cell is allocated.
func (l *Loop) Run() {
	l.Start()
	if l.cell == nil {
		return
	}
	for {
		l.Step()
	}
}

func (l *Loop) Value() int32 {
	return *l.cell
}

func (l *Loop) Addr() uintptr {
	return uintptr(unsafe.Pointer(l.cell))
}
