package pktmbuf_test

import (
	"testing"

	"github.com/packetplane/rtebind/core/testenv"
	"github.com/packetplane/rtebind/dpdk/ealtestenv"
	"github.com/packetplane/rtebind/dpdk/pktmbuf"
	"github.com/packetplane/rtebind/dpdk/pktmbuf/mbuftestenv"
)

func TestMain(m *testing.M) {
	ealtestenv.Init()
	directMp = mbuftestenv.DirectMempool()
	testenv.Exit(m.Run())
}

var (
	makeAR   = testenv.MakeAR
	directMp *pktmbuf.Pool
)
