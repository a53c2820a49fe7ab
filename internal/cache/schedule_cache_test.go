package cache

import "testing"

func TestOneKeyDisambiguates(t *testing.T) {
	// A ":" inside a user name must not alias another user/date pair.
	if oneKey("a:b", "c") == oneKey("a", "b:c") {
		t.Fatalf("colliding keys: %q", oneKey("a:b", "c"))
	}
	if oneKey("alice", "2024-01-01") == oneKey("alice", "2024-01-02") {
		t.Fatalf("distinct dates share a key")
	}
}
