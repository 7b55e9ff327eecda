package docmatch_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/reoring/docmatch"
)

func TestFilterJSON_PositionallyStableVerdicts(t *testing.T) {
	tree := compileSchema(t, `{"properties": {"n": {"type": "number", "minimum": 0}}}`)

	docs := [][]byte{
		[]byte(`{"n": 5}`),
		[]byte(`{"n": -1}`),
		[]byte(`{"n": "s"}`),
		[]byte(`{}`),
		[]byte(`{"n": 0}`),
	}
	got, err := docmatch.FilterJSON(context.Background(), tree, docs)
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	want := []bool{true, false, false, true, true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("verdicts mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterJSON_DecodeErrorAborts(t *testing.T) {
	tree := compileSchema(t, `{}`)

	docs := [][]byte{
		[]byte(`{"ok": 1}`),
		[]byte(`not json`),
	}
	if _, err := docmatch.FilterJSON(context.Background(), tree, docs); err == nil {
		t.Fatalf("expected decode error to surface")
	}
}

func TestFilterJSON_HonorsCancelledContext(t *testing.T) {
	tree := compileSchema(t, `{}`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	docs := make([][]byte, 64)
	for i := range docs {
		docs[i] = []byte(`{}`)
	}
	if _, err := docmatch.FilterJSON(ctx, tree, docs); err == nil {
		t.Fatalf("expected context cancellation to surface")
	}
}

func TestFilterJSON_Empty(t *testing.T) {
	tree := compileSchema(t, `{}`)
	got, err := docmatch.FilterJSON(context.Background(), tree, nil)
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no verdicts, got %d", len(got))
	}
}
