package alloc

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

const SlabSize = 1 << 24
const ChunkSizeShift = 18
const ChunkSize = 1 << ChunkSizeShift

type Chunk = [ChunkSize]byte

// ChunkGen slices slabs of anonymous private memory into chunks.
// Slabs are never unmapped.
type ChunkGen struct {
	CurSlab []byte
	Slabs   int

	// MaxSlabs limits the number of mapped slabs, 0 means unlimited.
	MaxSlabs int
}

var ErrExhausted = unix.ENOMEM

func (g *ChunkGen) Gen() (res *Chunk, err error) {
	if len(g.CurSlab) == 0 {
		if g.MaxSlabs > 0 && g.Slabs >= g.MaxSlabs {
			return nil, ErrExhausted
		}
		g.CurSlab, err = unix.Mmap(-1, 0, SlabSize, unix.PROT_READ|unix.PROT_WRITE,
			unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
		if err != nil {
			return nil, err
		}
		g.Slabs++
	}
	res = (*Chunk)(unsafe.Pointer(&g.CurSlab[0]))
	g.CurSlab = g.CurSlab[ChunkSize:]
	return res, nil
}

var ChunkGenerator ChunkGen

type Base struct {
	Chunks []*Chunk

	// Gen defaults to ChunkGenerator.
	Gen *ChunkGen
}

func (b *Base) ExtendChunks() (*Chunk, error) {
	gen := b.Gen
	if gen == nil {
		gen = &ChunkGenerator
	}
	chunk, err := gen.Gen()
	if err != nil {
		return nil, err
	}
	b.Chunks = append(b.Chunks, chunk)
	return chunk, nil
}
