package pktmbuf_test

import (
	"bytes"
	"testing"

	"github.com/packetplane/rtebind/dpdk/pktmbuf"
	"github.com/packetplane/rtebind/dpdk/pktmbuf/mbuftestenv"
)

func TestPacketReadWrite(t *testing.T) {
	assert, require := makeAR(t)
	vec := directMp.MustAlloc(2)
	defer vec.Close()

	part0 := bytes.Repeat([]byte{0xA0}, 100)
	part1 := bytes.Repeat([]byte{0xA1}, 200)
	part2 := bytes.Repeat([]byte{0xA2}, 300)

	pkt := vec[0]
	require.NotNil(pkt)
	assert.Equal(0, pkt.Len())
	assert.False(pkt.IsSegmented())

	pkt.SetHeadroom(200)
	assert.Equal(200, pkt.Headroom())
	tail0 := pkt.Tailroom()
	pkt.Append(part1)
	assert.Equal(200, pkt.Len())
	assert.Equal(200, tail0-pkt.Tailroom())

	seg1 := vec[1]
	e := pkt.Chain(seg1)
	require.NoError(e)
	vec[1] = nil // avoid double-free during vec.Close()
	assert.True(pkt.IsSegmented())

	pkt.Append(part2)
	assert.Equal(500, pkt.Len())
	pkt.Prepend(part0)
	assert.Equal(600, pkt.Len())
	assert.Equal([]int{300, 300}, pkt.SegmentLengths())

	assert.Equal(bytes.Join([][]byte{part0, part1, part2}, nil), pkt.Bytes())
}

func TestPacketPrepend(t *testing.T) {
	assert, _ := makeAR(t)

	pkt := mbuftestenv.MakePacket(mbuftestenv.Headroom(4), "0A0B")
	defer pkt.Close()
	assert.Equal(2, pkt.Len())
	assert.Equal(4, pkt.Headroom())

	assert.NoError(pkt.Prepend(nil))
	assert.Equal(2, pkt.Len())

	assert.NoError(pkt.Prepend([]byte{0x08, 0x09}))
	assert.Equal(4, pkt.Len())
	assert.Equal(0, pkt.Headroom())
	assert.Equal([]byte{0x08, 0x09, 0x0A, 0x0B}, pkt.Bytes())

	assert.Error(pkt.Prepend([]byte{0x07}))
}

func TestPacketOffloads(t *testing.T) {
	assert, _ := makeAR(t)

	pkt := mbuftestenv.MakePacket("A0A1A2A3")
	defer pkt.Close()

	assert.Zero(pkt.OffloadFlags() & pktmbuf.TxOffloadIPv4Cksum)
	pkt.SetL2Len(14)
	pkt.SetL3Len(20)
	pkt.SetOffloadFlags(pktmbuf.TxOffloadIPv4 | pktmbuf.TxOffloadIPv4Cksum)
	assert.NotZero(pkt.OffloadFlags() & pktmbuf.TxOffloadIPv4Cksum)
}
