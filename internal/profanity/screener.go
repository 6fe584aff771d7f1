package profanity

import (
	"bufio"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/bits-and-blooms/bloom/v3"
)

const bloomFalsePositiveRate = 0.01

// Screener checks display-facing names against a disallowed-word list.
// A bloom filter sits in front of the exact set so the common clean
// case is answered without a map lookup per token; bloom hits are
// confirmed against the set to rule out false positives.
type Screener struct {
	mu     sync.RWMutex
	filter *bloom.BloomFilter
	words  map[string]bool
}

// NewScreener creates a screener with no words loaded. Until words are
// loaded every name passes.
func NewScreener() *Screener {
	return &Screener{
		words: make(map[string]bool),
	}
}

// LoadWords replaces the screener's word list.
func (s *Screener) LoadWords(words []string) {
	normalized := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			normalized = append(normalized, w)
		}
	}

	filter := bloom.NewWithEstimates(uint(max(len(normalized), 1)), bloomFalsePositiveRate)
	set := make(map[string]bool, len(normalized))
	for _, w := range normalized {
		filter.AddString(w)
		set[w] = true
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = filter
	s.words = set
}

// LoadFromURL downloads a word list, one word per line, optionally
// gzipped, and replaces the screener's word list with it.
func (s *Screener) LoadFromURL(ctx context.Context, url string) error {
	client := &http.Client{
		Timeout: 2 * time.Minute,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download word list: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var reader io.Reader = resp.Body
	if strings.HasSuffix(url, ".gz") || resp.Header.Get("Content-Encoding") == "gzip" {
		gzReader, err := gzip.NewReader(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzReader.Close()
		reader = gzReader
	}

	words, err := parseWords(reader)
	if err != nil {
		return err
	}

	s.LoadWords(words)
	return nil
}

// parseWords reads one word per line, skipping blanks
func parseWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			words = append(words, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading word list: %w", err)
	}
	return words, nil
}

// IsProfane reports whether the text contains a disallowed word. The
// whole text and each whitespace-separated token are checked after
// lowercasing. The error return covers capability failure, here only
// context cancellation.
func (s *Screener) IsProfane(ctx context.Context, text string) (bool, error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.filter == nil || len(s.words) == 0 {
		return false, nil
	}

	lowered := strings.ToLower(strings.TrimSpace(text))
	candidates := append(strings.Fields(lowered), lowered)
	for _, candidate := range candidates {
		if s.filter.TestString(candidate) && s.words[candidate] {
			return true, nil
		}
	}
	return false, nil
}
