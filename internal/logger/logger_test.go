package logger

import (
	"bytes"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T, verboseMode bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(verboseMode)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	capture(t, false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestLevels_WhenVerbose(t *testing.T) {
	buf := capture(t, true)

	Debug("search %s", "강남")
	Info("backend %d", 200)
	Warn("slow reply")
	Section("Commute")

	assert.Equal(t,
		"[DEBUG] search 강남\n[INFO] backend 200\n[WARN] slow reply\n\n=== Commute ===\n",
		buf.String())
}

func TestLevels_WhenNotVerbose(t *testing.T) {
	buf := capture(t, false)

	Debug("hidden")
	Info("hidden")
	Warn("hidden")
	Section("hidden")

	assert.Empty(t, buf.String())
}

func TestError_AlwaysPrinted(t *testing.T) {
	buf := capture(t, false)

	Error("backend unreachable: %v", io.EOF)

	assert.Equal(t, "[ERROR] backend unreachable: EOF\n", buf.String())
}

func TestScoped(t *testing.T) {
	buf := capture(t, true)
	log := For("session/bus")

	log.Debug("scheduled %q", "100")
	log.Info("results=%d", 3)
	log.Warn("stale reply dropped")
	log.Error("failed")

	assert.Equal(t,
		"[DEBUG] session/bus: scheduled \"100\"\n"+
			"[INFO] session/bus: results=3\n"+
			"[WARN] session/bus: stale reply dropped\n"+
			"[ERROR] session/bus: failed\n",
		buf.String())
}

func TestScoped_ErrorWhenNotVerbose(t *testing.T) {
	buf := capture(t, false)

	For("voice").Debug("hidden")
	For("voice").Error("busy")

	assert.Equal(t, "[ERROR] voice: busy\n", buf.String())
}

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func TestConcurrentAccess(t *testing.T) {
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	SetOutput(&lockedBuffer{})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			SetVerbose(true)
			Debug("concurrent %d", i)
			For("worker").Info("tick %d", i)
			IsVerbose()
			SetVerbose(false)
		}()
	}
	wg.Wait()
}
