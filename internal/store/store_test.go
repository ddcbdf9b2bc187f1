package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/pwmeter/internal/analyzer"
	"github.com/verte-zerg/pwmeter/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestInsertAndListEntries(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	base := time.Unix(0, 0).UTC()
	for i, pw := range []string{"abc", "Password1!", "Xk9#mQ2$vL7!pR4&"} {
		e := EntryFromResult(analyzer.Analyze(pw), model.SourceTyped, base.Add(time.Duration(i)*time.Minute))
		if _, err := st.InsertEntry(ctx, e); err != nil {
			t.Fatalf("insert entry: %v", err)
		}
	}

	entries, err := st.ListEntries(ctx, model.HistoryConfig{})
	if err != nil {
		t.Fatalf("list entries: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Score != 1 || !entries[0].HasSequence {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if entries[2].Score != 80 || entries[2].Strength != "strong" {
		t.Fatalf("unexpected last entry: %+v", entries[2])
	}
	if entries[0].SessionID != st.SessionID() {
		t.Fatalf("expected session id %q, got %q", st.SessionID(), entries[0].SessionID)
	}

	last, err := st.ListEntries(ctx, model.HistoryConfig{Last: 2})
	if err != nil {
		t.Fatalf("list last entries: %v", err)
	}
	if len(last) != 2 || last[0].ID != entries[1].ID {
		t.Fatalf("unexpected last entries: %+v", last)
	}

	since := base.Add(90 * time.Second)
	recent, err := st.ListEntries(ctx, model.HistoryConfig{Since: &since})
	if err != nil {
		t.Fatalf("list since: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("expected 1 entry since %v, got %d", since, len(recent))
	}
}

func TestListEntriesBySource(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	now := time.Now()
	typed := EntryFromResult(analyzer.Analyze("abc"), model.SourceTyped, now)
	generated := EntryFromResult(analyzer.Analyze("Xk9#mQ2$vL7!pR4&"), model.SourceGenerated, now.Add(time.Second))
	for _, e := range []model.HistoryEntry{typed, generated} {
		if _, err := st.InsertEntry(ctx, e); err != nil {
			t.Fatalf("insert entry: %v", err)
		}
	}
	entries, err := st.ListEntries(ctx, model.HistoryConfig{Source: model.SourceGenerated})
	if err != nil {
		t.Fatalf("list entries: %v", err)
	}
	if len(entries) != 1 || entries[0].Source != model.SourceGenerated {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestSummaryAndClear(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	sum, err := st.Summary(ctx)
	if err != nil {
		t.Fatalf("summary on empty store: %v", err)
	}
	if sum.Count != 0 || sum.BestScore != 0 {
		t.Fatalf("unexpected empty summary: %+v", sum)
	}

	now := time.Now()
	for _, score := range []int{40, 80} {
		if _, err := st.InsertEntry(ctx, model.HistoryEntry{CreatedAt: now, Source: model.SourceGenerated, Score: score, Entropy: 10, Strength: "good"}); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	sum, err = st.Summary(ctx)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.Count != 2 || sum.Sessions != 1 || sum.BestScore != 80 || sum.AvgScore != 60 {
		t.Fatalf("unexpected summary: %+v", sum)
	}

	n, err := st.Clear(ctx)
	if err != nil || n != 2 {
		t.Fatalf("clear: n=%d err=%v", n, err)
	}
}
