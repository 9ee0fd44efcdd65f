package pktmbuf

/*
#include "../../csrc/dpdk/mbuf.h"
*/
import "C"
import (
	"strings"
	"sync"

	"github.com/packetplane/rtebind/dpdk/eal"
	"go.uber.org/zap"
)

var templates = map[string]*Template{}

func validateTemplateID(id string) bool {
	if id == "" {
		return false
	}
	for _, ch := range id {
		if !strings.ContainsRune("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789", ch) {
			return false
		}
	}
	return true
}

// Template represents a template to create per-NUMA mempools of packet buffers.
type Template struct {
	id    string
	mutex sync.Mutex
	cfg   PoolConfig
	pools map[eal.NumaSocket]*Pool
}

// ID returns template identifier.
func (tpl *Template) ID() string {
	return tpl.id
}

// Config returns current configuration.
func (tpl *Template) Config() PoolConfig {
	tpl.mutex.Lock()
	defer tpl.mutex.Unlock()
	return tpl.cfg
}

// Update changes mempool configuration.
// PrivSize can only be increased.
// Dataroom can be updated only if the original dataroom is non-zero.
// Returns self.
func (tpl *Template) Update(update PoolConfig) *Template {
	tpl.mutex.Lock()
	defer tpl.mutex.Unlock()

	if update.Capacity > 0 {
		tpl.cfg.Capacity = update.Capacity
	}

	if update.PrivSize > tpl.cfg.PrivSize {
		tpl.cfg.PrivSize = update.PrivSize
	} else if update.PrivSize > 0 {
		logger.Info("ignoring attempt to decrease PrivSize",
			zap.String("template", tpl.id),
			zap.Int("old-priv-size", tpl.cfg.PrivSize),
			zap.Int("new-priv-size", update.PrivSize),
		)
	}

	if tpl.cfg.Dataroom > 0 && update.Dataroom > 0 {
		tpl.cfg.Dataroom = update.Dataroom
	}

	return tpl
}

// Get retrieves or creates a Pool on the given NUMA socket.
// Errors are fatal.
func (tpl *Template) Get(socket eal.NumaSocket) *Pool {
	if len(eal.Sockets) <= 1 {
		socket = eal.NumaSocket{}
	}

	tpl.mutex.Lock()
	defer tpl.mutex.Unlock()
	if pool, ok := tpl.pools[socket]; ok {
		return pool
	}

	pool, e := NewPool(tpl.cfg, socket)
	if e != nil {
		logger.Fatal("mempool creation failed",
			zap.String("template", tpl.id),
			socket.ZapField("socket"),
			zap.Error(e),
		)
	}
	logger.Info("mempool created",
		zap.String("template", tpl.id),
		socket.ZapField("socket"),
		zap.String("name", pool.String()),
	)
	tpl.pools[socket] = pool
	return pool
}

// Pool returns the Pool for SOCKET_ID_ANY, creating it if necessary.
func (tpl *Template) Pool() *Pool {
	return tpl.Get(eal.NumaSocket{})
}

// RegisterTemplate adds a mempool template.
// id can only contain upper-case letters and digits.
func RegisterTemplate(id string, cfg PoolConfig) *Template {
	if !validateTemplateID(id) {
		logger.Panic("invalid template ID", zap.String("template", id))
	}
	if _, ok := templates[id]; ok {
		logger.Panic("duplicate template ID", zap.String("template", id))
	}
	tpl := &Template{
		id:    id,
		cfg:   cfg,
		pools: map[eal.NumaSocket]*Pool{},
	}
	templates[id] = tpl
	return tpl
}

// FindTemplate locates template by ID.
func FindTemplate(id string) *Template {
	return templates[id]
}

// Predefined mempool templates.
var (
	// Direct is a mempool template for direct mbufs.
	Direct = RegisterTemplate("DIRECT", PoolConfig{
		Capacity: 524287,
		Dataroom: C.RTE_MBUF_DEFAULT_BUF_SIZE,
	})

	// Indirect is a mempool template for indirect mbufs.
	Indirect = RegisterTemplate("INDIRECT", PoolConfig{
		Capacity: 1048575,
	})
)
