package testutils

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"testing"
)

// Main runs a package's tests and always purges the shared Postgres container,
// including when the run is interrupted. Call it from TestMain.
func Main(m *testing.M, label string) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Printf("%s interrupted, cleaning up Docker containers...", label)
		CleanupSharedContainer()
		os.Exit(1)
	}()

	log.Printf("Starting %s...", label)
	code := m.Run()

	log.Printf("%s completed, cleaning up Docker containers...", label)
	CleanupSharedContainer()

	os.Exit(code)
}
