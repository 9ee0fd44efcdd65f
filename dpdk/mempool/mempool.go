// Package mempool contains bindings of DPDK memory pool.
package mempool

/*
#cgo pkg-config: libdpdk

#include "../../csrc/core/common.h"
#include <rte_mempool.h>
*/
import "C"
import (
	"fmt"
	"math/bits"
	"unsafe"

	"github.com/packetplane/rtebind/core/cptr"
	"github.com/packetplane/rtebind/core/logging"
	"github.com/packetplane/rtebind/dpdk/eal"
	"go.uber.org/zap"
)

var logger = logging.New("mempool")

// ComputeOptimumCapacity adjusts mempool capacity to be a power of two minus one, if near.
func ComputeOptimumCapacity(capacity int) int {
	if bits.OnesCount64(uint64(capacity)) == 1 {
		capacity--
	}
	return capacity
}

// ComputeCacheSize calculates the appropriate cache size for given mempool capacity.
func ComputeCacheSize(capacity int) int {
	max := C.RTE_MEMPOOL_CACHE_MAX_SIZE
	if capacity/16 < max {
		return capacity / 16
	}
	min := max / 4
	for i := max; i >= min; i-- {
		if capacity%i == 0 {
			return i
		}
	}
	return max
}

// Config contains Mempool configuration.
type Config struct {
	// Capacity is the number of objects.
	// It is adjusted via ComputeOptimumCapacity.
	Capacity int

	// ElementSize is the size of each object.
	ElementSize int

	// PrivSize is the size of private data area between the mempool struct and the objects.
	PrivSize int

	// Socket is the preferred NUMA socket.
	Socket eal.NumaSocket

	// NoCache disables per-lcore cache.
	NoCache bool

	SingleProducer bool
	SingleConsumer bool
}

// Mempool represents a DPDK memory pool for generic objects.
type Mempool C.struct_rte_mempool

// FromPtr converts *C.struct_rte_mempool pointer to Mempool.
func FromPtr(ptr unsafe.Pointer) *Mempool {
	return (*Mempool)(ptr)
}

// New creates a Mempool.
func New(cfg Config) (mp *Mempool, e error) {
	name := eal.AllocObjectID("mempool.Mempool")
	nameC := C.CString(name)
	defer C.free(unsafe.Pointer(nameC))

	var flags C.unsigned
	if cfg.SingleProducer {
		flags |= C.RTE_MEMPOOL_F_SP_PUT
	}
	if cfg.SingleConsumer {
		flags |= C.RTE_MEMPOOL_F_SC_GET
	}

	capacity := ComputeOptimumCapacity(cfg.Capacity)
	cacheSize := 0
	if !cfg.NoCache {
		cacheSize = ComputeCacheSize(capacity)
	}

	mp = (*Mempool)(C.rte_mempool_create(nameC, C.uint(capacity), C.uint(cfg.ElementSize), C.uint(cacheSize),
		C.unsigned(cfg.PrivSize), nil, nil, nil, nil, C.int(cfg.Socket.ID()), flags))
	if mp == nil {
		return nil, fmt.Errorf("rte_mempool_create: %w", eal.GetErrno())
	}

	logger.Debug("mempool created",
		zap.String("name", name),
		zap.Int("capacity", capacity),
		zap.Int("element-size", cfg.ElementSize),
		mp.Socket().ZapField("socket"),
	)
	return mp, nil
}

// Ptr returns *C.struct_rte_mempool pointer.
func (mp *Mempool) Ptr() unsafe.Pointer {
	return unsafe.Pointer(mp)
}

func (mp *Mempool) ptr() *C.struct_rte_mempool {
	return (*C.struct_rte_mempool)(mp)
}

// Close releases the mempool.
func (mp *Mempool) Close() error {
	C.rte_mempool_free(mp.ptr())
	return nil
}

func (mp *Mempool) String() string {
	return C.GoString(&mp.name[0])
}

// SizeofElement returns element size.
func (mp *Mempool) SizeofElement() int {
	return int(mp.elt_size)
}

// Socket returns the NUMA socket where the mempool memory resides.
func (mp *Mempool) Socket() eal.NumaSocket {
	return eal.NumaSocketFromID(int(mp.socket_id))
}

// CountAvailable returns number of available objects.
func (mp *Mempool) CountAvailable() int {
	return int(C.rte_mempool_avail_count(mp.ptr()))
}

// CountInUse returns number of allocated objects.
func (mp *Mempool) CountInUse() int {
	return int(C.rte_mempool_in_use_count(mp.ptr()))
}

// Alloc allocates several objects.
// objs should be a slice of C void* pointers.
// Allocating zero objects always succeeds.
func (mp *Mempool) Alloc(objs any) error {
	ptr, count := cptr.ParseCptrArray(objs)
	if count == 0 {
		return nil
	}
	if res := C.rte_mempool_get_bulk(mp.ptr(), (*unsafe.Pointer)(ptr), C.uint(count)); res != 0 {
		return eal.MakeErrno(res)
	}
	return nil
}

// Free releases several objects.
// objs should be a slice of C void* pointers.
// Freeing zero objects is a no-op.
func (mp *Mempool) Free(objs any) {
	ptr, count := cptr.ParseCptrArray(objs)
	if count == 0 {
		return
	}
	C.rte_mempool_put_bulk(mp.ptr(), (*unsafe.Pointer)(ptr), C.uint(count))
}
