package testutils

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"testing"
)

// TestMain guards the shared Postgres container: any suite in this package
// that touched it gets the container purged when the run ends, including on
// Ctrl+C.
func TestMain(m *testing.M) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("\n🛑 Received interrupt signal, cleaning up test containers...")
		CleanupSharedContainer()
		os.Exit(1)
	}()

	log.Println("🧪 Starting testutils checks with container cleanup enabled...")
	code := m.Run()

	log.Println("✅ Tests completed, cleaning up test containers...")
	CleanupSharedContainer()

	os.Exit(code)
}
