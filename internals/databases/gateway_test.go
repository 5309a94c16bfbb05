package database

import (
	"strings"
	"testing"
)

func TestServiceHandle_RetriesConstructionAfterFailure(t *testing.T) {
	t.Setenv("DB_SERVICE_USER", "")
	t.Setenv("DB_SERVICE_PASSWORD", "")

	_, err := ServiceHandle()
	if err == nil {
		t.Fatal("missing credentials must fail")
	}
	if !strings.Contains(err.Error(), "not set") {
		t.Fatalf("err = %v, want the missing-credentials error", err)
	}

	// credentials appear later; the next call must attempt a fresh
	// construction instead of replaying the first failure
	t.Setenv("DB_SERVICE_USER", "svc")
	t.Setenv("DB_SERVICE_PASSWORD", "pw")
	t.Setenv("DB_HOST", "127.0.0.1")
	t.Setenv("DB_PORT", "1") // nothing listens here
	t.Setenv("DB_NAME", "hoaportal")
	t.Setenv("DB_SSLMODE", "disable")

	_, err = ServiceHandle()
	if err == nil {
		t.Fatal("unreachable host must fail")
	}
	if strings.Contains(err.Error(), "not set") {
		t.Fatal("second call replayed the cached failure instead of retrying")
	}
}
