package ealconfig_test

import (
	"strings"
	"testing"

	"github.com/packetplane/rtebind/core/hwinfo"
	"github.com/packetplane/rtebind/core/testenv"
	"github.com/packetplane/rtebind/dpdk/ealconfig"
)

var makeAR = testenv.MakeAR

type hwInfoTestProvider struct {
	cores hwinfo.Cores
}

func (p hwInfoTestProvider) Cores() hwinfo.Cores {
	return p.cores
}

// Core IDs:
//
//	NUMA 0: 0, 2, 4, 6 (hyper-threads: 8, 10)
//	NUMA 1: 1, 3, 5, 7 (hyper-threads: 9, 11)
var hwInfoTest = hwInfoTestProvider{
	cores: hwinfo.Cores{
		{ID: 0, NumaSocket: 0, PhysicalKey: 100},
		{ID: 1, NumaSocket: 1, PhysicalKey: 101},
		{ID: 2, NumaSocket: 0, PhysicalKey: 102},
		{ID: 3, NumaSocket: 1, PhysicalKey: 103},
		{ID: 4, NumaSocket: 0, PhysicalKey: 104},
		{ID: 5, NumaSocket: 1, PhysicalKey: 105},
		{ID: 6, NumaSocket: 0, PhysicalKey: 106},
		{ID: 7, NumaSocket: 1, PhysicalKey: 107},
		{ID: 8, NumaSocket: 0, PhysicalKey: 100},
		{ID: 9, NumaSocket: 1, PhysicalKey: 101},
		{ID: 10, NumaSocket: 0, PhysicalKey: 102},
		{ID: 11, NumaSocket: 1, PhysicalKey: 103},
	},
}

func TestFlags(t *testing.T) {
	assert, require := makeAR(t)

	var cfg ealconfig.Config
	cfg.Flags = "--flag1 'value 1' --flag2"
	args, e := cfg.Args(hwInfoTest)
	require.NoError(e)
	assert.Equal([]string{"--flag1", "value 1", "--flag2"}, args)

	cfg.Flags = "--unbalanced 'quote"
	_, e = cfg.Args(hwInfoTest)
	assert.Error(e)
}

func TestLCoreCores(t *testing.T) {
	assert, require := makeAR(t)

	var cfg ealconfig.Config
	cfg.Cores = []int{1, 3, 5, 98, 99}
	args, e := cfg.Args(hwInfoTest)
	require.NoError(e)
	assert.Equal([]string{"-l", "1,3,5"}, args)
}

func TestLCoreCoresPerNuma(t *testing.T) {
	assert, require := makeAR(t)

	var cfg ealconfig.Config
	cfg.CoresPerNuma = map[int]int{
		0: 3,
		1: -4,
	}
	args, e := cfg.Args(hwInfoTest)
	require.NoError(e)
	require.Len(args, 2)
	assert.Equal("-l", args[0])
	assert.ElementsMatch([]string{"0", "2", "4", "1", "3"},
		strings.Split(args[1], ","))
}

func TestLCoresPerNuma(t *testing.T) {
	assert, require := makeAR(t)

	var cfg ealconfig.Config
	cfg.LCoresPerNuma = map[int]int{
		0: 2,
		1: 1,
	}
	args, e := cfg.Args(hwInfoTest)
	require.NoError(e)
	require.Len(args, 2)
	assert.Equal("--lcores", args[0])
	assert.Equal("(0,1)@(0,2,4,6,8,10),(2)@(1,3,5,7,9,11)", args[1])

	cfg.LCoresPerNuma = map[int]int{9: 1}
	_, e = cfg.Args(hwInfoTest)
	assert.Error(e)
}

func TestMemory(t *testing.T) {
	assert, require := makeAR(t)

	var cfg ealconfig.Config
	cfg.Cores = []int{0}
	cfg.MemChannels = 4
	cfg.MemPerNuma = map[int]int{1: 2048}
	cfg.FilePrefix = "rtebind-test"
	args, e := cfg.Args(hwInfoTest)
	require.NoError(e)
	assert.Equal([]string{
		"-l", "0",
		"-n", "4",
		"--socket-limit", "0,2048",
		"--file-prefix", "rtebind-test",
	}, args)
}

func TestDevice(t *testing.T) {
	assert, require := makeAR(t)

	var cfg ealconfig.Config
	cfg.Cores = []int{0}
	cfg.PciDevices = []string{"0000:5e:00.0", "0000:5e:00.1"}
	cfg.VirtualDevices = []string{"net_ring0"}
	args, e := cfg.Args(hwInfoTest)
	require.NoError(e)
	assert.Equal([]string{
		"-l", "0",
		"-a", "0000:5e:00.0", "-a", "0000:5e:00.1",
		"--vdev", "net_ring0",
	}, args)

	cfg.NoPci = true
	args, e = cfg.Args(hwInfoTest)
	require.NoError(e)
	assert.NotContains(args, "-a")
	assert.Contains(args, "--no-pci")
}

func TestExtraFlags(t *testing.T) {
	assert, require := makeAR(t)

	var cfg ealconfig.Config
	cfg.Cores = []int{0}
	cfg.ExtraFlags = "--iova-mode pa"
	args, e := cfg.Args(hwInfoTest)
	require.NoError(e)
	assert.Equal([]string{"-l", "0", "--iova-mode", "pa"}, args)
}
