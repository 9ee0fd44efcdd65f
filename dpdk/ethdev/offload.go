package ethdev

/*
#include "../../csrc/dpdk/ethdev.h"
*/
import "C"

// RX offload capabilities.
const (
	RxOffloadVlanStrip      uint64 = C.RTE_ETH_RX_OFFLOAD_VLAN_STRIP
	RxOffloadIPv4Cksum      uint64 = C.RTE_ETH_RX_OFFLOAD_IPV4_CKSUM
	RxOffloadUDPCksum       uint64 = C.RTE_ETH_RX_OFFLOAD_UDP_CKSUM
	RxOffloadTCPCksum       uint64 = C.RTE_ETH_RX_OFFLOAD_TCP_CKSUM
	RxOffloadTCPLro         uint64 = C.RTE_ETH_RX_OFFLOAD_TCP_LRO
	RxOffloadQinqStrip      uint64 = C.RTE_ETH_RX_OFFLOAD_QINQ_STRIP
	RxOffloadOuterIPv4Cksum uint64 = C.RTE_ETH_RX_OFFLOAD_OUTER_IPV4_CKSUM
	RxOffloadMacsecStrip    uint64 = C.RTE_ETH_RX_OFFLOAD_MACSEC_STRIP
	RxOffloadVlanFilter     uint64 = C.RTE_ETH_RX_OFFLOAD_VLAN_FILTER
	RxOffloadVlanExtend     uint64 = C.RTE_ETH_RX_OFFLOAD_VLAN_EXTEND
	RxOffloadScatter        uint64 = C.RTE_ETH_RX_OFFLOAD_SCATTER
	RxOffloadTimestamp      uint64 = C.RTE_ETH_RX_OFFLOAD_TIMESTAMP
	RxOffloadSecurity       uint64 = C.RTE_ETH_RX_OFFLOAD_SECURITY
	RxOffloadKeepCrc        uint64 = C.RTE_ETH_RX_OFFLOAD_KEEP_CRC
	RxOffloadSCTPCksum      uint64 = C.RTE_ETH_RX_OFFLOAD_SCTP_CKSUM
	RxOffloadOuterUDPCksum  uint64 = C.RTE_ETH_RX_OFFLOAD_OUTER_UDP_CKSUM
	RxOffloadRssHash        uint64 = C.RTE_ETH_RX_OFFLOAD_RSS_HASH

	// RxOffloadChecksum combines IPv4, UDP, and TCP checksum offloads.
	RxOffloadChecksum uint64 = C.RTE_ETH_RX_OFFLOAD_CHECKSUM

	// RxOffloadVlan combines VLAN related offloads.
	RxOffloadVlan uint64 = C.RTE_ETH_RX_OFFLOAD_VLAN
)

// TX offload capabilities.
const (
	TxOffloadVlanInsert      uint64 = C.RTE_ETH_TX_OFFLOAD_VLAN_INSERT
	TxOffloadIPv4Cksum       uint64 = C.RTE_ETH_TX_OFFLOAD_IPV4_CKSUM
	TxOffloadUDPCksum        uint64 = C.RTE_ETH_TX_OFFLOAD_UDP_CKSUM
	TxOffloadTCPCksum        uint64 = C.RTE_ETH_TX_OFFLOAD_TCP_CKSUM
	TxOffloadSCTPCksum       uint64 = C.RTE_ETH_TX_OFFLOAD_SCTP_CKSUM
	TxOffloadTCPTso          uint64 = C.RTE_ETH_TX_OFFLOAD_TCP_TSO
	TxOffloadUDPTso          uint64 = C.RTE_ETH_TX_OFFLOAD_UDP_TSO
	TxOffloadOuterIPv4Cksum  uint64 = C.RTE_ETH_TX_OFFLOAD_OUTER_IPV4_CKSUM
	TxOffloadQinqInsert      uint64 = C.RTE_ETH_TX_OFFLOAD_QINQ_INSERT
	TxOffloadVxlanTnlTso     uint64 = C.RTE_ETH_TX_OFFLOAD_VXLAN_TNL_TSO
	TxOffloadGreTnlTso       uint64 = C.RTE_ETH_TX_OFFLOAD_GRE_TNL_TSO
	TxOffloadIpipTnlTso      uint64 = C.RTE_ETH_TX_OFFLOAD_IPIP_TNL_TSO
	TxOffloadGeneveTnlTso    uint64 = C.RTE_ETH_TX_OFFLOAD_GENEVE_TNL_TSO
	TxOffloadMacsecInsert    uint64 = C.RTE_ETH_TX_OFFLOAD_MACSEC_INSERT
	TxOffloadMtLockfree      uint64 = C.RTE_ETH_TX_OFFLOAD_MT_LOCKFREE
	TxOffloadMultiSegs       uint64 = C.RTE_ETH_TX_OFFLOAD_MULTI_SEGS
	TxOffloadMbufFastFree    uint64 = C.RTE_ETH_TX_OFFLOAD_MBUF_FAST_FREE
	TxOffloadSecurity        uint64 = C.RTE_ETH_TX_OFFLOAD_SECURITY
	TxOffloadUDPTnlTso       uint64 = C.RTE_ETH_TX_OFFLOAD_UDP_TNL_TSO
	TxOffloadIPTnlTso        uint64 = C.RTE_ETH_TX_OFFLOAD_IP_TNL_TSO
	TxOffloadOuterUDPCksum   uint64 = C.RTE_ETH_TX_OFFLOAD_OUTER_UDP_CKSUM
	TxOffloadSendOnTimestamp uint64 = C.RTE_ETH_TX_OFFLOAD_SEND_ON_TIMESTAMP
)

// Multi-queue RX mode flags.
const (
	MqRxRssFlag  uint32 = C.RTE_ETH_MQ_RX_RSS_FLAG
	MqRxDcbFlag  uint32 = C.RTE_ETH_MQ_RX_DCB_FLAG
	MqRxVmdqFlag uint32 = C.RTE_ETH_MQ_RX_VMDQ_FLAG
)

// RSS hash protocols.
// These are 64-bit values; several protocols added in recent DPDK releases
// occupy bits above 31.
const (
	RssIPv4             uint64 = C.RTE_ETH_RSS_IPV4
	RssFragIPv4         uint64 = C.RTE_ETH_RSS_FRAG_IPV4
	RssNonfragIPv4TCP   uint64 = C.RTE_ETH_RSS_NONFRAG_IPV4_TCP
	RssNonfragIPv4UDP   uint64 = C.RTE_ETH_RSS_NONFRAG_IPV4_UDP
	RssNonfragIPv4SCTP  uint64 = C.RTE_ETH_RSS_NONFRAG_IPV4_SCTP
	RssNonfragIPv4Other uint64 = C.RTE_ETH_RSS_NONFRAG_IPV4_OTHER
	RssIPv6             uint64 = C.RTE_ETH_RSS_IPV6
	RssFragIPv6         uint64 = C.RTE_ETH_RSS_FRAG_IPV6
	RssNonfragIPv6TCP   uint64 = C.RTE_ETH_RSS_NONFRAG_IPV6_TCP
	RssNonfragIPv6UDP   uint64 = C.RTE_ETH_RSS_NONFRAG_IPV6_UDP
	RssNonfragIPv6SCTP  uint64 = C.RTE_ETH_RSS_NONFRAG_IPV6_SCTP
	RssNonfragIPv6Other uint64 = C.RTE_ETH_RSS_NONFRAG_IPV6_OTHER
	RssL2Payload        uint64 = C.RTE_ETH_RSS_L2_PAYLOAD
	RssIPv6Ex           uint64 = C.RTE_ETH_RSS_IPV6_EX
	RssIPv6TCPEx        uint64 = C.RTE_ETH_RSS_IPV6_TCP_EX
	RssIPv6UDPEx        uint64 = C.RTE_ETH_RSS_IPV6_UDP_EX
	RssPort             uint64 = C.RTE_ETH_RSS_PORT
	RssVxlan            uint64 = C.RTE_ETH_RSS_VXLAN
	RssGeneve           uint64 = C.RTE_ETH_RSS_GENEVE
	RssNvgre            uint64 = C.RTE_ETH_RSS_NVGRE
	RssGtpu             uint64 = C.RTE_ETH_RSS_GTPU
	RssEth              uint64 = C.RTE_ETH_RSS_ETH
	RssSVlan            uint64 = C.RTE_ETH_RSS_S_VLAN
	RssCVlan            uint64 = C.RTE_ETH_RSS_C_VLAN
	RssEsp              uint64 = C.RTE_ETH_RSS_ESP
	RssAh               uint64 = C.RTE_ETH_RSS_AH
	RssL2tpv3           uint64 = C.RTE_ETH_RSS_L2TPV3
	RssPfcp             uint64 = C.RTE_ETH_RSS_PFCP
	RssPppoe            uint64 = C.RTE_ETH_RSS_PPPOE
	RssEcpri            uint64 = C.RTE_ETH_RSS_ECPRI
	RssMpls             uint64 = C.RTE_ETH_RSS_MPLS

	// RssIP combines IPv4 and IPv6 RSS hash protocols.
	RssIP uint64 = C.RTE_ETH_RSS_IP
	// RssUDP combines UDP RSS hash protocols.
	RssUDP uint64 = C.RTE_ETH_RSS_UDP
	// RssTCP combines TCP RSS hash protocols.
	RssTCP uint64 = C.RTE_ETH_RSS_TCP
)
