// Package ethringdev contains bindings of DPDK net_ring driver.
package ethringdev

/*
#cgo pkg-config: libdpdk

#include "../../../csrc/core/common.h"
#include <rte_ethdev.h>
#include <rte_eth_ring.h>
*/
import "C"
import (
	"fmt"
	"unsafe"

	"github.com/packetplane/rtebind/core/cptr"
	"github.com/packetplane/rtebind/core/logging"
	"github.com/packetplane/rtebind/core/macaddr"
	"github.com/packetplane/rtebind/dpdk/eal"
	"github.com/packetplane/rtebind/dpdk/ethdev"
	"github.com/packetplane/rtebind/dpdk/ringbuffer"
)

var logger = logging.New("ethringdev")

// New creates an EthDev from a set of software FIFOs.
// The new port has a random unicast MAC address.
func New(rxRings, txRings []*ringbuffer.Ring, socket eal.NumaSocket) (dev ethdev.EthDev, e error) {
	nameC := C.CString(eal.AllocObjectID("ethringdev.EthDev"))
	defer C.free(unsafe.Pointer(nameC))

	res := C.rte_eth_from_rings(nameC,
		cptr.FirstPtr[*C.struct_rte_ring](rxRings), C.uint(len(rxRings)),
		cptr.FirstPtr[*C.struct_rte_ring](txRings), C.uint(len(txRings)),
		C.uint(socket.ID()))
	if res < 0 {
		return dev, fmt.Errorf("rte_eth_from_rings: %w", eal.GetErrno())
	}
	dev = ethdev.FromID(int(res))

	mac := macaddr.MakeRandom(false)
	var macC C.struct_rte_ether_addr
	copy(cptr.AsByteSlice(macC.addr_bytes[:]), mac)
	if res = C.rte_eth_dev_mac_addr_add(C.uint16_t(dev.ID()), &macC, 0); res != 0 {
		dev.Close()
		return ethdev.EthDev{}, eal.MakeErrno(res)
	}

	return dev, nil
}
