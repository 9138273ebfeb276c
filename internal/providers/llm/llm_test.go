package llm

import (
	"context"
	"testing"
)

func TestDisabledRewriterFallsBack(t *testing.T) {
	r, err := New(context.Background(), "", "")
	if err != nil {
		t.Fatal(err)
	}
	if r.Enabled() {
		t.Error("rewriter should be disabled without an API key")
	}

	fallback := "Add a meta description."
	if got := r.Enhance(context.Background(), "https://example.com", "metaDescription", 20, fallback); got != fallback {
		t.Errorf("Enhance = %q, want fallback unchanged", got)
	}
}

func TestNilRewriterIsSafe(t *testing.T) {
	var r *Rewriter
	if r.Enabled() {
		t.Error("nil rewriter must report disabled")
	}
	if got := r.Enhance(context.Background(), "u", "f", 0, "text"); got != "text" {
		t.Errorf("Enhance on nil = %q", got)
	}
}
