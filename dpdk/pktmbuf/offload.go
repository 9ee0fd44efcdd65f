package pktmbuf

/*
#include "../../csrc/dpdk/mbuf.h"
*/
import "C"

// Mbuf offload flags, to be set in conjunction with SetL2Len and SetL3Len.
const (
	TxOffloadVlan      uint64 = C.RTE_MBUF_F_TX_VLAN
	TxOffloadIPv4      uint64 = C.RTE_MBUF_F_TX_IPV4
	TxOffloadIPv6      uint64 = C.RTE_MBUF_F_TX_IPV6
	TxOffloadIPv4Cksum uint64 = C.RTE_MBUF_F_TX_IP_CKSUM
	TxOffloadUDPCksum  uint64 = C.RTE_MBUF_F_TX_UDP_CKSUM
	TxOffloadTCPCksum  uint64 = C.RTE_MBUF_F_TX_TCP_CKSUM
	TxOffloadSCTPCksum uint64 = C.RTE_MBUF_F_TX_SCTP_CKSUM

	RxOffloadVlanStripped uint64 = C.RTE_MBUF_F_RX_VLAN_STRIPPED
	RxOffloadIPCksumGood  uint64 = C.RTE_MBUF_F_RX_IP_CKSUM_GOOD
	RxOffloadIPCksumBad   uint64 = C.RTE_MBUF_F_RX_IP_CKSUM_BAD
	RxOffloadL4CksumGood  uint64 = C.RTE_MBUF_F_RX_L4_CKSUM_GOOD
	RxOffloadL4CksumBad   uint64 = C.RTE_MBUF_F_RX_L4_CKSUM_BAD
	RxOffloadRssHash      uint64 = C.RTE_MBUF_F_RX_RSS_HASH
)
