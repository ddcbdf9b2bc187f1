package wordlist

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFilterPrintable(t *testing.T) {
	if !FilterPrintable("hunter2") {
		t.Fatalf("expected hunter2 to pass filter")
	}
	for _, word := range []string{"", "two words", "tab\tbed", "bell\a"} {
		if FilterPrintable(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
}

func TestLoadWords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "denylist.txt")
	data := "# leaked\nhunter2\n\n  trustno1  \nbad entry\nHunter2\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write list: %v", err)
	}
	words, err := LoadWords(path, FilterPrintable)
	if err != nil {
		t.Fatalf("LoadWords failed: %v", err)
	}
	if len(words) != 2 || words[0] != "hunter2" || words[1] != "trustno1" {
		t.Fatalf("unexpected words: %v", words)
	}
}

func TestLoadWordsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("# nothing\n"), 0o644); err != nil {
		t.Fatalf("write list: %v", err)
	}
	if _, err := LoadWords(path, nil); err == nil {
		t.Fatalf("expected error for empty list")
	}
}
