// Package pktmbuf contains bindings of DPDK mbuf library.
package pktmbuf

/*
#cgo pkg-config: libdpdk

#include "../../csrc/dpdk/mbuf.h"
*/
import "C"
import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/packetplane/rtebind/core/logging"
)

var logger = logging.New("pktmbuf")

// DefaultHeadroom is the default headroom of a mbuf.
const DefaultHeadroom = C.RTE_PKTMBUF_HEADROOM

// Packet represents a packet in mbuf.
type Packet C.struct_rte_mbuf

// PacketFromPtr converts *C.struct_rte_mbuf pointer to Packet.
func PacketFromPtr(ptr unsafe.Pointer) *Packet {
	return (*Packet)(ptr)
}

// Ptr returns *C.struct_rte_mbuf pointer.
func (pkt *Packet) Ptr() unsafe.Pointer {
	return unsafe.Pointer(pkt)
}

func (pkt *Packet) ptr() *C.struct_rte_mbuf {
	return (*C.struct_rte_mbuf)(pkt)
}

// Close releases the mbuf to mempool.
func (pkt *Packet) Close() error {
	C.rte_pktmbuf_free(pkt.ptr())
	return nil
}

// Len returns packet length in octets.
func (pkt *Packet) Len() int {
	return int(pkt.pkt_len)
}

// Port returns ingress network interface.
func (pkt *Packet) Port() uint16 {
	return uint16(pkt.port)
}

// SetPort sets ingress network interface.
func (pkt *Packet) SetPort(port uint16) {
	pkt.port = C.uint16_t(port)
}

// IsSegmented returns true if the packet has more than one segment.
func (pkt *Packet) IsSegmented() bool {
	return pkt.nb_segs > 1
}

// SegmentLengths returns lengths of segments in this packet.
func (pkt *Packet) SegmentLengths() (list []int) {
	for m := pkt.ptr(); m != nil; m = m.next {
		list = append(list, int(m.data_len))
	}
	return list
}

// DataPtr returns void* pointer to data in first segment.
func (pkt *Packet) DataPtr() unsafe.Pointer {
	return unsafe.Add(pkt.buf_addr, pkt.data_off)
}

// Bytes returns a []byte that contains a copy of the data in this packet.
func (pkt *Packet) Bytes() []byte {
	b := make([]byte, pkt.Len())
	if len(b) > 0 {
		C.Mbuf_CopyTo(pkt.ptr(), unsafe.Pointer(&b[0]))
	}
	return b
}

// ZeroCopyBytes returns the data in this packet.
// It aliases the mbuf if the packet has only one segment.
func (pkt *Packet) ZeroCopyBytes() []byte {
	if pkt.nb_segs == 1 {
		return unsafe.Slice((*byte)(pkt.DataPtr()), pkt.Len())
	}
	return pkt.Bytes()
}

// Headroom returns headroom of the first segment.
func (pkt *Packet) Headroom() int {
	return int(pkt.data_off)
}

// SetHeadroom changes headroom of the first segment.
// It can only be used on an empty packet.
func (pkt *Packet) SetHeadroom(headroom int) error {
	if pkt.Len() > 0 {
		return errors.New("cannot change headroom of non-empty packet")
	}
	if C.uint16_t(headroom) > pkt.buf_len {
		return errors.New("headroom cannot exceed buffer length")
	}
	pkt.data_off = C.uint16_t(headroom)
	return nil
}

// Tailroom returns tailroom of the last segment.
func (pkt *Packet) Tailroom() int {
	return int(C.rte_pktmbuf_tailroom(C.rte_pktmbuf_lastseg(pkt.ptr())))
}

// Prepend prepends to the packet in headroom of the first segment.
// Prepending zero octets always succeeds.
func (pkt *Packet) Prepend(input []byte) error {
	count := len(input)
	if count == 0 {
		return nil
	}

	room := C.rte_pktmbuf_prepend(pkt.ptr(), C.uint16_t(count))
	if room == nil {
		return fmt.Errorf("insufficient headroom %d", pkt.Headroom())
	}
	copy(unsafe.Slice((*byte)(unsafe.Pointer(room)), count), input)
	return nil
}

// Append appends to the packet in tailroom of the last segment.
func (pkt *Packet) Append(input []byte) error {
	count := len(input)
	if count == 0 {
		return nil
	}

	room := C.rte_pktmbuf_append(pkt.ptr(), C.uint16_t(count))
	if room == nil {
		return fmt.Errorf("insufficient tailroom %d", pkt.Tailroom())
	}
	copy(unsafe.Slice((*byte)(unsafe.Pointer(room)), count), input)
	return nil
}

// Chain combines two packets.
// tail will be freed when pkt is freed.
func (pkt *Packet) Chain(tail *Packet) error {
	if res := C.rte_pktmbuf_chain(pkt.ptr(), tail.ptr()); res != 0 {
		return errors.New("too many segments")
	}
	return nil
}

// SetL2Len sets layer 2 header length for TX offloads.
func (pkt *Packet) SetL2Len(length int) {
	C.Mbuf_SetL2Len(pkt.ptr(), C.uint64_t(length))
}

// SetL3Len sets layer 3 header length for TX offloads.
func (pkt *Packet) SetL3Len(length int) {
	C.Mbuf_SetL3Len(pkt.ptr(), C.uint64_t(length))
}

// OffloadFlags returns mbuf offload flags.
func (pkt *Packet) OffloadFlags() uint64 {
	return uint64(pkt.ol_flags)
}

// SetOffloadFlags enables mbuf offload flags.
func (pkt *Packet) SetOffloadFlags(flags uint64) {
	pkt.ol_flags |= C.uint64_t(flags)
}
