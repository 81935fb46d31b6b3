// Package flatfile implements the record store: one delimited text file per
// entity type, whole-file rewrite on mutation, single-row append for logs.
package flatfile

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"branch-ledger/pkg/apperror"
)

// Separator joins the fields of one persisted row.
const Separator = ","

// Store reads and writes one delimited flat file of records. A missing file
// is an empty store, not an error. Save is atomic from the reader's
// perspective: rows go to a temporary file in the same directory which is
// then renamed over the target, so a crash mid-save never leaves a
// truncated store.
type Store struct {
	mu     sync.Mutex
	path   string
	fields int
}

// NewStore creates a store for path expecting the given field count per
// row. The last field is split greedily, so embedded separators in a
// trailing free-text field survive a round trip.
func NewStore(path string, fields int) *Store {
	return &Store{path: path, fields: fields}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns every row in file order. A row with too few fields surfaces
// as a malformed-record error carrying the file and row number.
func (s *Store) Load() ([][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(false)
}

// Scan is the lenient variant of Load for bulk reporting: rows that do not
// split into the expected field count are skipped and counted instead of
// aborting the read.
func (s *Store) Scan() ([][]string, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.load(true)
	if err != nil {
		return nil, 0, err
	}
	kept := rows[:0]
	skipped := 0
	for _, row := range rows {
		if row == nil {
			skipped++
			continue
		}
		kept = append(kept, row)
	}
	return kept, skipped, nil
}

// load reads the file under the store lock. In lenient mode malformed rows
// come back as nil placeholders for the caller to count.
func (s *Store) load(lenient bool) ([][]string, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.ErrStoreIO("open", s.path, err)
	}
	defer f.Close()

	var rows [][]string
	sc := bufio.NewScanner(f)
	row := 0
	for sc.Scan() {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		row++
		parts := strings.SplitN(text, Separator, s.fields)
		if len(parts) != s.fields {
			if lenient {
				rows = append(rows, nil)
				continue
			}
			return nil, apperror.ErrMalformedRecord(s.path, row,
				fmt.Errorf("want %d fields, got %d", s.fields, len(parts)))
		}
		rows = append(rows, parts)
	}
	if err := sc.Err(); err != nil {
		return nil, apperror.ErrStoreIO("read", s.path, err)
	}
	return rows, nil
}

// Save rewrites the whole store with the given rows.
func (s *Store) Save(rows [][]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return apperror.ErrStoreIO("create", tmp, err)
	}

	w := bufio.NewWriter(f)
	for _, row := range rows {
		if _, err := w.WriteString(strings.Join(row, Separator) + "\n"); err != nil {
			f.Close()
			return apperror.ErrStoreIO("write", tmp, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return apperror.ErrStoreIO("write", tmp, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return apperror.ErrStoreIO("sync", tmp, err)
	}
	if err := f.Close(); err != nil {
		return apperror.ErrStoreIO("close", tmp, err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return apperror.ErrStoreIO("rename", s.path, err)
	}
	return nil
}

// Append adds one row without reading the rest of the store.
func (s *Store) Append(row []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return apperror.ErrStoreIO("open", s.path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(strings.Join(row, Separator) + "\n"); err != nil {
		return apperror.ErrStoreIO("append", s.path, err)
	}
	return nil
}
