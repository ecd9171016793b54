package xlog

import (
	"io"
	"sync"

	"go.uber.org/zap/zapcore"
)

var _ zapcore.WriteSyncer = (*xLogLockSyncer)(nil)

// xLogLockSyncer serializes the writes into a plain io.Writer, for
// a bytes.Buffer in tests or the cli output.
type xLogLockSyncer struct {
	outWriter io.Writer
	mu        sync.Mutex
}

func (syncer *xLogLockSyncer) Sync() error {
	syncer.mu.Lock()
	defer syncer.mu.Unlock()
	if s, ok := syncer.outWriter.(interface{ Sync() error }); ok {
		return s.Sync()
	}
	return nil
}

func (syncer *xLogLockSyncer) Write(log []byte) (n int, err error) {
	syncer.mu.Lock()
	defer syncer.mu.Unlock()

	return syncer.outWriter.Write(log)
}

func XLogLockSyncer(writer io.Writer) zapcore.WriteSyncer {
	return &xLogLockSyncer{
		outWriter: writer,
	}
}
