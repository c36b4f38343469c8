package core

import (
	"bytes"
	"sync"
	"sync/atomic"
	"time"
	"unsafe"
)

// StampLayout is the timestamp layout of every rendered line,
// local time, second precision.
const StampLayout = "2006-01-02T15:04:05"

const sep = " / "

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// cachedStamp holds the most recently formatted timestamp together
// with the second it was formatted for. Lines are stamped at second
// precision, so consecutive commits within the same second can reuse
// one formatted string instead of calling time.Format while the
// store's lock is held.
type cachedStamp struct {
	unix int64
	text string
}

var lastStamp unsafe.Pointer // *cachedStamp

// stamp returns t formatted as StampLayout, serving repeated calls
// within the same second from the cache.
func stamp(t time.Time) string {
	unix := t.Unix()
	if p := (*cachedStamp)(atomic.LoadPointer(&lastStamp)); p != nil && p.unix == unix {
		return p.text
	}
	s := t.Format(StampLayout)
	atomic.StorePointer(&lastStamp, unsafe.Pointer(&cachedStamp{unix: unix, text: s}))
	return s
}

// Line renders the canonical record line:
//
//	2006-01-02T15:04:05 / [MESSAGE] / text
func Line(t time.Time, p Priority, msg string) string {
	buf := getBuffer()
	buf.WriteString(stamp(t))
	buf.WriteString(sep)
	buf.WriteString(p.Tag())
	buf.WriteString(sep)
	buf.WriteString(msg)
	s := buf.String()
	putBuffer(buf)
	return s
}
