package ethdev_test

import (
	"testing"

	"github.com/packetplane/rtebind/dpdk/ethdev"
)

// Numeric values pinned against DPDK 23.11 rte_ethdev.h.
// A failure here indicates the installed DPDK renumbered its flags.

func TestRxOffloadValues(t *testing.T) {
	assert, _ := makeAR(t)

	for name, tt := range map[string]struct {
		got  uint64
		want uint64
	}{
		"VlanStrip":      {ethdev.RxOffloadVlanStrip, 1 << 0},
		"IPv4Cksum":      {ethdev.RxOffloadIPv4Cksum, 1 << 1},
		"UDPCksum":       {ethdev.RxOffloadUDPCksum, 1 << 2},
		"TCPCksum":       {ethdev.RxOffloadTCPCksum, 1 << 3},
		"TCPLro":         {ethdev.RxOffloadTCPLro, 1 << 4},
		"QinqStrip":      {ethdev.RxOffloadQinqStrip, 1 << 5},
		"OuterIPv4Cksum": {ethdev.RxOffloadOuterIPv4Cksum, 1 << 6},
		"MacsecStrip":    {ethdev.RxOffloadMacsecStrip, 1 << 7},
		"VlanFilter":     {ethdev.RxOffloadVlanFilter, 1 << 9},
		"VlanExtend":     {ethdev.RxOffloadVlanExtend, 1 << 10},
		"Scatter":        {ethdev.RxOffloadScatter, 1 << 13},
		"Timestamp":      {ethdev.RxOffloadTimestamp, 1 << 14},
		"Security":       {ethdev.RxOffloadSecurity, 1 << 15},
		"KeepCrc":        {ethdev.RxOffloadKeepCrc, 1 << 16},
		"SCTPCksum":      {ethdev.RxOffloadSCTPCksum, 1 << 17},
		"OuterUDPCksum":  {ethdev.RxOffloadOuterUDPCksum, 1 << 18},
		"RssHash":        {ethdev.RxOffloadRssHash, 1 << 19},
		"Checksum":       {ethdev.RxOffloadChecksum, 0x0E},
		"Vlan":           {ethdev.RxOffloadVlan, 0x621},
	} {
		assert.Equal(tt.want, tt.got, name)
	}
}

func TestTxOffloadValues(t *testing.T) {
	assert, _ := makeAR(t)

	for name, tt := range map[string]struct {
		got  uint64
		want uint64
	}{
		"VlanInsert":      {ethdev.TxOffloadVlanInsert, 1 << 0},
		"IPv4Cksum":       {ethdev.TxOffloadIPv4Cksum, 1 << 1},
		"UDPCksum":        {ethdev.TxOffloadUDPCksum, 1 << 2},
		"TCPCksum":        {ethdev.TxOffloadTCPCksum, 1 << 3},
		"SCTPCksum":       {ethdev.TxOffloadSCTPCksum, 1 << 4},
		"TCPTso":          {ethdev.TxOffloadTCPTso, 1 << 5},
		"UDPTso":          {ethdev.TxOffloadUDPTso, 1 << 6},
		"OuterIPv4Cksum":  {ethdev.TxOffloadOuterIPv4Cksum, 1 << 7},
		"QinqInsert":      {ethdev.TxOffloadQinqInsert, 1 << 8},
		"VxlanTnlTso":     {ethdev.TxOffloadVxlanTnlTso, 1 << 9},
		"GreTnlTso":       {ethdev.TxOffloadGreTnlTso, 1 << 10},
		"IpipTnlTso":      {ethdev.TxOffloadIpipTnlTso, 1 << 11},
		"GeneveTnlTso":    {ethdev.TxOffloadGeneveTnlTso, 1 << 12},
		"MacsecInsert":    {ethdev.TxOffloadMacsecInsert, 1 << 13},
		"MtLockfree":      {ethdev.TxOffloadMtLockfree, 1 << 14},
		"MultiSegs":       {ethdev.TxOffloadMultiSegs, 1 << 15},
		"MbufFastFree":    {ethdev.TxOffloadMbufFastFree, 1 << 16},
		"Security":        {ethdev.TxOffloadSecurity, 1 << 17},
		"UDPTnlTso":       {ethdev.TxOffloadUDPTnlTso, 1 << 18},
		"IPTnlTso":        {ethdev.TxOffloadIPTnlTso, 1 << 19},
		"OuterUDPCksum":   {ethdev.TxOffloadOuterUDPCksum, 1 << 20},
		"SendOnTimestamp": {ethdev.TxOffloadSendOnTimestamp, 1 << 21},
	} {
		assert.Equal(tt.want, tt.got, name)
	}
}

func TestMqRssValues(t *testing.T) {
	assert, _ := makeAR(t)

	assert.Equal(uint32(0x1), ethdev.MqRxRssFlag)
	assert.Equal(uint32(0x2), ethdev.MqRxDcbFlag)
	assert.Equal(uint32(0x4), ethdev.MqRxVmdqFlag)

	for name, tt := range map[string]struct {
		got  uint64
		want uint64
	}{
		"IPv4":             {ethdev.RssIPv4, 1 << 2},
		"FragIPv4":         {ethdev.RssFragIPv4, 1 << 3},
		"NonfragIPv4TCP":   {ethdev.RssNonfragIPv4TCP, 1 << 4},
		"NonfragIPv4UDP":   {ethdev.RssNonfragIPv4UDP, 1 << 5},
		"NonfragIPv4SCTP":  {ethdev.RssNonfragIPv4SCTP, 1 << 6},
		"NonfragIPv4Other": {ethdev.RssNonfragIPv4Other, 1 << 7},
		"IPv6":             {ethdev.RssIPv6, 1 << 8},
		"FragIPv6":         {ethdev.RssFragIPv6, 1 << 9},
		"NonfragIPv6TCP":   {ethdev.RssNonfragIPv6TCP, 1 << 10},
		"NonfragIPv6UDP":   {ethdev.RssNonfragIPv6UDP, 1 << 11},
		"NonfragIPv6SCTP":  {ethdev.RssNonfragIPv6SCTP, 1 << 12},
		"NonfragIPv6Other": {ethdev.RssNonfragIPv6Other, 1 << 13},
		"L2Payload":        {ethdev.RssL2Payload, 1 << 14},
		"IPv6Ex":           {ethdev.RssIPv6Ex, 1 << 15},
		"IPv6TCPEx":        {ethdev.RssIPv6TCPEx, 1 << 16},
		"IPv6UDPEx":        {ethdev.RssIPv6UDPEx, 1 << 17},
		"Port":             {ethdev.RssPort, 1 << 18},
		"Vxlan":            {ethdev.RssVxlan, 1 << 19},
		"Geneve":           {ethdev.RssGeneve, 1 << 20},
		"Nvgre":            {ethdev.RssNvgre, 1 << 21},
		"Gtpu":             {ethdev.RssGtpu, 1 << 23},
		"Eth":              {ethdev.RssEth, 1 << 24},
		"SVlan":            {ethdev.RssSVlan, 1 << 25},
		"CVlan":            {ethdev.RssCVlan, 1 << 26},
		"Esp":              {ethdev.RssEsp, 1 << 27},
		"Ah":               {ethdev.RssAh, 1 << 28},
		"L2tpv3":           {ethdev.RssL2tpv3, 1 << 29},
		"Pfcp":             {ethdev.RssPfcp, 1 << 30},
		"Pppoe":            {ethdev.RssPppoe, 1 << 31},
		"Ecpri":            {ethdev.RssEcpri, 1 << 32},
		"Mpls":             {ethdev.RssMpls, 1 << 33},
	} {
		assert.Equal(tt.want, tt.got, name)

		// values above bit 31 would be lost in a 32-bit representation
		if tt.want > 1<<31 {
			assert.NotZero(tt.got>>32, name)
		}
	}

	assert.Equal(uint64(0xA38C), ethdev.RssIP)
	assert.Equal(uint64(0x20820), ethdev.RssUDP)
	assert.Equal(uint64(0x10410), ethdev.RssTCP)
}
