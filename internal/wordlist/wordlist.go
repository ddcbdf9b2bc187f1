// Package wordlist loads password denylists from files.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadWords reads one entry per line from path. Blank lines and '#' comments
// are skipped, entries rejected by filter are dropped and case-insensitive
// duplicates keep their first spelling.
func LoadWords(path string, filter FilterFunc) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for a read-only list.
			_ = cerr
		}
	}()

	seen := make(map[string]struct{})
	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		entry := strings.TrimSpace(scanner.Text())
		if entry == "" || entry[0] == '#' {
			continue
		}
		if filter != nil && !filter(entry) {
			continue
		}
		key := strings.ToLower(entry)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		words = append(words, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("denylist %s has no entries", path)
	}
	return words, nil
}
