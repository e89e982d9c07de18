package watch

import "testing"

func TestMergeContext_Dedup(t *testing.T) {
	left := []map[string]string{{"a": "1"}, {"b": "2"}}
	right := []map[string]string{{"a": "1"}, {"c": "3"}}

	got := mergeContext(left, right)
	if len(got) != 3 {
		t.Fatalf("len(merged) = %d, want 3", len(got))
	}
}

func TestMergeContext_SkipsEmpty(t *testing.T) {
	left := []map[string]string{{}}
	right := []map[string]string{{"a": "1"}}

	got := mergeContext(left, right)
	if len(got) != 1 {
		t.Fatalf("len(merged) = %d, want 1", len(got))
	}
}

func TestMergeContext_KeyOrderIndependent(t *testing.T) {
	left := []map[string]string{{"a": "1", "b": "2"}}
	right := []map[string]string{{"b": "2", "a": "1"}}

	got := mergeContext(left, right)
	if len(got) != 1 {
		t.Fatalf("len(merged) = %d, want 1 (structurally equal maps should dedup)", len(got))
	}
}
