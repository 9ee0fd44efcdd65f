package pktmbuf

/*
#include "../../csrc/dpdk/mbuf.h"
*/
import "C"
import (
	"fmt"
	"unsafe"

	"github.com/packetplane/rtebind/core/cptr"
	"github.com/packetplane/rtebind/dpdk/eal"
	"github.com/packetplane/rtebind/dpdk/mempool"
)

// PoolConfig contains configuration for NewPool.
type PoolConfig struct {
	// Capacity is the number of mbufs.
	// It is adjusted via mempool.ComputeOptimumCapacity.
	Capacity int `json:"capacity,omitempty"`

	// PrivSize is the size of private data area on each mbuf.
	PrivSize int `json:"privSize,omitempty"`

	// Dataroom is the size of dataroom on each mbuf, including headroom.
	Dataroom int `json:"dataroom,omitempty"`
}

func (cfg *PoolConfig) applyDefaults() {
	if cfg.Capacity <= 0 {
		cfg.Capacity = 4095
	}
	// Dataroom is kept as-is: zero dataroom is valid for indirect mbufs.
}

// Pool represents a DPDK memory pool for packet buffers.
type Pool struct {
	*mempool.Mempool
}

// NewPool creates a Pool.
func NewPool(cfg PoolConfig, socket eal.NumaSocket) (*Pool, error) {
	cfg.applyDefaults()
	nameC := C.CString(eal.AllocObjectID("pktmbuf.Pool"))
	defer C.free(unsafe.Pointer(nameC))

	capacity := mempool.ComputeOptimumCapacity(cfg.Capacity)
	mpC := C.rte_pktmbuf_pool_create(nameC, C.uint(capacity),
		C.uint(mempool.ComputeCacheSize(capacity)), C.uint16_t(cfg.PrivSize),
		C.uint16_t(cfg.Dataroom), C.int(socket.ID()))
	if mpC == nil {
		return nil, fmt.Errorf("rte_pktmbuf_pool_create: %w", eal.GetErrno())
	}
	return PoolFromPtr(unsafe.Pointer(mpC)), nil
}

// PoolFromPtr converts *C.struct_rte_mempool pointer to Pool.
func PoolFromPtr(ptr unsafe.Pointer) *Pool {
	return &Pool{mempool.FromPtr(ptr)}
}

func (mp *Pool) ptr() *C.struct_rte_mempool {
	return (*C.struct_rte_mempool)(mp.Ptr())
}

// Dataroom returns dataroom setting, including headroom.
func (mp *Pool) Dataroom() int {
	return int(C.rte_pktmbuf_data_room_size(mp.ptr()))
}

// PrivSize returns size of the private data area on each mbuf.
func (mp *Pool) PrivSize() int {
	return int(C.rte_pktmbuf_priv_size(mp.ptr()))
}

// Alloc allocates a vector of mbufs.
func (mp *Pool) Alloc(count int) (Vector, error) {
	vec := make(Vector, count)
	if count == 0 {
		return vec, nil
	}
	res := C.rte_pktmbuf_alloc_bulk(mp.ptr(), cptr.FirstPtr[*C.struct_rte_mbuf](vec), C.uint(count))
	if res != 0 {
		return nil, eal.MakeErrno(res)
	}
	return vec, nil
}

// MustAlloc allocates a vector of mbufs, and panics upon error.
func (mp *Pool) MustAlloc(count int) Vector {
	vec, e := mp.Alloc(count)
	if e != nil {
		logger.Panic("mbuf allocation failed; check mempool capacity and usage")
	}
	return vec
}
