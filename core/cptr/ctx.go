package cptr

import (
	"math/rand"
	"sync"
	"unsafe"
)

var ctxMap sync.Map

// CtxPut allocates a fake void* pointer for an arbitrary Go object.
// The pointer is opaque to C code and is only meaningful as a lookup key.
func CtxPut(obj any) unsafe.Pointer {
	var id uint32
	for {
		id = rand.Uint32()
		if _, loaded := ctxMap.LoadOrStore(id, obj); !loaded {
			break
		}
	}
	n := uintptr(id)
	return unsafe.Pointer(n)
}

// CtxGet returns the object associated with a void* pointer.
// Panics if the object is not found.
func CtxGet(ctx unsafe.Pointer) any {
	id := uint32(uintptr(ctx))
	obj, ok := ctxMap.Load(id)
	if !ok {
		panic("context is missing")
	}
	return obj
}

// CtxClear deallocates a void* pointer.
func CtxClear(ctx unsafe.Pointer) {
	id := uint32(uintptr(ctx))
	ctxMap.Delete(id)
}

// CtxPop is equivalent to CtxGet followed by CtxClear.
func CtxPop(ctx unsafe.Pointer) any {
	obj := CtxGet(ctx)
	CtxClear(ctx)
	return obj
}
