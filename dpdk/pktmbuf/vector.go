package pktmbuf

/*
#include "../../csrc/dpdk/mbuf.h"
*/
import "C"
import (
	"unsafe"

	"github.com/packetplane/rtebind/core/cptr"
)

// Vector is a vector of packet buffers.
type Vector []*Packet

// Ptr returns **C.struct_rte_mbuf pointer.
func (vec Vector) Ptr() unsafe.Pointer {
	return unsafe.Pointer(cptr.FirstPtr[*C.struct_rte_mbuf](vec))
}

func (vec Vector) ptr() **C.struct_rte_mbuf {
	return cptr.FirstPtr[*C.struct_rte_mbuf](vec)
}

// Close releases the mbufs.
// Closing an empty vector is a no-op.
func (vec Vector) Close() error {
	if len(vec) == 0 {
		return nil
	}
	C.rte_pktmbuf_free_bulk(vec.ptr(), C.uint(len(vec)))
	return nil
}
