package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/onsi/gomega"
)

func TestWatcherReportsWrites(t *testing.T) {
	g := NewWithT(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "launch.yaml")
	g.Expect(os.WriteFile(path, []byte("speed: 10\n"), 0644)).To(Succeed())

	w, err := NewWatcher(path)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(w.Start()).To(Succeed())
	defer w.Stop()

	// Unrelated files in the same directory are ignored.
	g.Expect(os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0644)).To(Succeed())
	g.Consistently(w.Changes, 3*Debounce).ShouldNot(Receive())

	g.Expect(os.WriteFile(path, []byte("speed: 20\n"), 0644)).To(Succeed())
	g.Eventually(w.Changes, 2*time.Second).Should(Receive(Equal(w.Path)))
}

func TestWatcherDebounces(t *testing.T) {
	g := NewWithT(t)
	path := filepath.Join(t.TempDir(), "launch.toml")
	g.Expect(os.WriteFile(path, nil, 0644)).To(Succeed())

	w, err := NewWatcher(path)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(w.Start()).To(Succeed())
	defer w.Stop()

	for i := range 5 {
		g.Expect(os.WriteFile(path, []byte{byte('0' + i)}, 0644)).To(Succeed())
	}

	g.Eventually(w.Changes, 2*time.Second).Should(Receive())
	g.Consistently(w.Changes, 3*Debounce).ShouldNot(Receive())
}

func TestWatcherMissingDir(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "missing", "launch.yaml"))
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	if err := w.Start(); err == nil {
		t.Error("expected error watching a missing directory")
	}
	w.watcher.Close()
}
