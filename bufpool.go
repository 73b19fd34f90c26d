package utfconv

import (
	"bytes"
	"sync"
)

// bytesBufPool reuses the buffers whole inputs are read into before decoding.
// We pool *bytes.Buffer because they are easily reset and resized.
var bytesBufPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 4096))
	},
}

// maxPooledBuffer keeps a single huge input from pinning its buffer in the pool.
const maxPooledBuffer = 1 << 20

func putBytesBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBuffer {
		return
	}
	bytesBufPool.Put(buf)
}
