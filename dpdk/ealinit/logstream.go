package ealinit

/*
#include "../../csrc/core/common.h"
#include <rte_log.h>
*/
import "C"
import (
	"bufio"
	"errors"
	"os"
	"strings"
	"unsafe"

	"github.com/packetplane/rtebind/core/logging"
	"go.uber.org/zap"
)

var dpdkLogger = logging.Named("DPDK")

// logStreamW keeps the pipe writer alive so its file descriptor stays open.
var logStreamW *os.File

// initLogStream redirects DPDK log output into our logger.
func initLogStream() error {
	r, w, e := os.Pipe()
	if e != nil {
		return e
	}
	logStreamW = w

	mode := C.CString("w")
	defer C.free(unsafe.Pointer(mode))
	fp := C.fdopen(C.int(w.Fd()), mode)
	if fp == nil {
		return errors.New("fdopen failed")
	}
	if res := C.rte_openlog_stream(fp); res != 0 {
		return errors.New("rte_openlog_stream failed")
	}

	go func() {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			writeLogLine(scanner.Text())
		}
	}()
	return nil
}

func writeLogLine(line string) {
	line = strings.TrimRight(line, " \t\r")
	if line == "" {
		return
	}

	subsys, msg := "", line
	if i := strings.Index(line, ": "); i > 0 && i <= 16 {
		subsys, msg = line[:i], line[i+2:]
	}

	switch {
	case strings.HasPrefix(msg, "Error"), strings.HasPrefix(msg, "error"):
		dpdkLogger.Error(msg, zap.String("subsys", subsys))
	default:
		dpdkLogger.Info(msg, zap.String("subsys", subsys))
	}
}
