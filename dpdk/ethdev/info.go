package ethdev

/*
#include "../../csrc/dpdk/ethdev.h"
*/
import "C"
import (
	"github.com/zyedidia/generic"
)

// Driver names.
const (
	DriverAfPacket = "net_af_packet"
	DriverXDP      = "net_af_xdp"
	DriverMemif    = "net_memif"
	DriverRing     = "net_ring"
)

// DescLim describes descriptor count limits of an RX or TX queue.
type DescLim struct {
	Max   int `json:"max"`
	Min   int `json:"min"`
	Align int `json:"align"`
}

// adjustQueueCapacity adjusts RX/TX queue capacity to satisfy driver requirements.
func (lim DescLim) adjustQueueCapacity(capacity int) int {
	if lim.Align > 0 {
		capacity -= capacity % lim.Align
	}
	if lim.Min == 0 && lim.Max == 0 {
		return capacity
	}
	return generic.Clamp(capacity, lim.Min, lim.Max)
}

// DevInfo provides contextual information of an Ethernet port.
type DevInfo struct {
	Driver              string  `json:"driver"`
	MinMTU              int     `json:"minMTU"`
	MaxMTU              int     `json:"maxMTU"`
	MaxRxPktLen         int     `json:"maxRxPktLen"`
	MaxRxQueues         int     `json:"maxRxQueues"`
	MaxTxQueues         int     `json:"maxTxQueues"`
	RxOffloadCapa       uint64  `json:"rxOffloadCapa"`
	TxOffloadCapa       uint64  `json:"txOffloadCapa"`
	FlowTypeRssOffloads uint64  `json:"flowTypeRssOffloads"`
	RxDescLim           DescLim `json:"rxDescLim"`
	TxDescLim           DescLim `json:"txDescLim"`
}

func devInfoFromC(infoC C.struct_rte_eth_dev_info) (info DevInfo) {
	info.Driver = C.GoString(infoC.driver_name)
	info.MinMTU = int(infoC.min_mtu)
	info.MaxMTU = int(infoC.max_mtu)
	info.MaxRxPktLen = int(infoC.max_rx_pktlen)
	info.MaxRxQueues = int(infoC.max_rx_queues)
	info.MaxTxQueues = int(infoC.max_tx_queues)
	info.RxOffloadCapa = uint64(infoC.rx_offload_capa)
	info.TxOffloadCapa = uint64(infoC.tx_offload_capa)
	info.FlowTypeRssOffloads = uint64(infoC.flow_type_rss_offloads)
	info.RxDescLim = DescLim{
		Max:   int(infoC.rx_desc_lim.nb_max),
		Min:   int(infoC.rx_desc_lim.nb_min),
		Align: int(infoC.rx_desc_lim.nb_align),
	}
	info.TxDescLim = DescLim{
		Max:   int(infoC.tx_desc_lim.nb_max),
		Min:   int(infoC.tx_desc_lim.nb_min),
		Align: int(infoC.tx_desc_lim.nb_align),
	}
	return info
}

// IsVDev determines whether the driver is a virtual device.
func (info DevInfo) IsVDev() bool {
	switch info.Driver {
	case DriverAfPacket, DriverXDP, DriverMemif, DriverRing:
		return true
	}
	return false
}

// canIgnoreSetMTUError determines whether set MTU error should be ignored.
func (info DevInfo) canIgnoreSetMTUError() bool {
	switch info.Driver {
	case DriverMemif, DriverRing:
		return true
	}
	return false
}

// canIgnorePromiscError determines whether enable/disable promiscuous mode error should be ignored.
func (info DevInfo) canIgnorePromiscError() bool {
	switch info.Driver {
	case DriverMemif, DriverRing:
		return true
	}
	return false
}

// HasTxMultiSegOffload determines whether device can transmit multi-segment packets.
func (info DevInfo) HasTxMultiSegOffload() bool {
	if info.TxOffloadCapa&TxOffloadMultiSegs == TxOffloadMultiSegs {
		return true
	}

	switch info.Driver { // some drivers support multi-segment TX but do not advertise it
	case DriverRing:
		return true
	}
	return false
}

// HasTxChecksumOffload determines whether device can compute IPv4 and UDP checksum upon transmission.
func (info DevInfo) HasTxChecksumOffload() bool {
	capa := TxOffloadIPv4Cksum | TxOffloadUDPCksum
	return info.TxOffloadCapa&capa == capa
}
