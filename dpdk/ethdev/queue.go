package ethdev

/*
#include "../../csrc/dpdk/ethdev.h"
*/
import "C"
import (
	"github.com/packetplane/rtebind/core/cptr"
	"github.com/packetplane/rtebind/dpdk/pktmbuf"
)

// RxQueue represents an RX queue.
type RxQueue struct {
	Port  uint16
	Queue uint16
}

// RxQueues returns RX queues of a started port.
func (port EthDev) RxQueues() (list []RxQueue) {
	var infoC C.struct_rte_eth_dev_info
	if res := C.rte_eth_dev_info_get(C.uint16_t(port.ID()), &infoC); res != 0 {
		return nil
	}
	for q := range int(infoC.nb_rx_queues) {
		list = append(list, RxQueue{Port: uint16(port.ID()), Queue: uint16(q)})
	}
	return list
}

// RxBurst receives a burst of input packets.
// Returns the number of packets received and written into vec.
// The returned count never exceeds len(vec); zero-length vec is a no-op.
func (q RxQueue) RxBurst(vec pktmbuf.Vector) int {
	if len(vec) == 0 {
		return 0
	}
	res := C.rte_eth_rx_burst(C.uint16_t(q.Port), C.uint16_t(q.Queue),
		cptr.FirstPtr[*C.struct_rte_mbuf](vec), C.uint16_t(len(vec)))
	return int(res)
}

// TxQueue represents a TX queue.
type TxQueue struct {
	Port  uint16
	Queue uint16
}

// TxQueues returns TX queues of a started port.
func (port EthDev) TxQueues() (list []TxQueue) {
	var infoC C.struct_rte_eth_dev_info
	if res := C.rte_eth_dev_info_get(C.uint16_t(port.ID()), &infoC); res != 0 {
		return nil
	}
	for q := range int(infoC.nb_tx_queues) {
		list = append(list, TxQueue{Port: uint16(port.ID()), Queue: uint16(q)})
	}
	return list
}

// TxBurst transmits a burst of output packets.
// Returns the number of packets enqueued; the caller keeps ownership of the rest.
// Zero-length vec is a no-op.
func (q TxQueue) TxBurst(vec pktmbuf.Vector) int {
	if len(vec) == 0 {
		return 0
	}
	return int(C.rte_eth_tx_burst(C.uint16_t(q.Port), C.uint16_t(q.Queue),
		cptr.FirstPtr[*C.struct_rte_mbuf](vec), C.uint16_t(len(vec))))
}
