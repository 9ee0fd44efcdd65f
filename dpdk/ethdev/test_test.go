package ethdev_test

import (
	"testing"

	"github.com/packetplane/rtebind/core/testenv"
	"github.com/packetplane/rtebind/dpdk/ealtestenv"
)

func TestMain(m *testing.M) {
	ealtestenv.Init()
	testenv.Exit(m.Run())
}

var makeAR = testenv.MakeAR
