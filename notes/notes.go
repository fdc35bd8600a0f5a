// Package notes persists local review state - marks and free-text notes
// keyed by segment ID. This is reviewer-private state and never leaves the
// machine; server-side class labels are a separate thing entirely.
package notes

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	bolt "go.etcd.io/bbolt"
)

// Mark is the review flag a segment can carry.
type Mark string

const (
	MarkNone  Mark = ""
	MarkRed   Mark = "red"
	MarkGreen Mark = "green"
	MarkAmber Mark = "amber"
)

var (
	bucketMarks = []byte("marks")
	bucketNotes = []byte("notes")
)

// Store is a bbolt-backed session store.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the session store at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("open session store %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketMarks, bucketNotes} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init session store: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SetMark stores the mark for a segment; MarkNone removes it.
func (s *Store) SetMark(segID int, m Mark) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketMarks)
		if m == MarkNone {
			return b.Delete(key(segID))
		}
		return b.Put(key(segID), []byte(m))
	})
}

// Mark returns the mark for a segment, MarkNone when unmarked.
func (s *Store) Mark(segID int) Mark {
	var m Mark
	s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketMarks).Get(key(segID)); v != nil {
			m = sanitizeMark(string(v))
		}
		return nil
	})
	return m
}

// Marked returns the set of marked segment IDs.
func (s *Store) Marked() (map[int]Mark, error) {
	out := make(map[int]Mark)
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketMarks).ForEach(func(k, v []byte) error {
			id, err := parseKey(k)
			if err != nil {
				return err
			}
			out[id] = sanitizeMark(string(v))
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("read marks: %w", err)
	}
	return out, nil
}

// SetNote stores a note for a segment; an empty note removes it.
func (s *Store) SetNote(segID int, note string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketNotes)
		if note == "" {
			return b.Delete(key(segID))
		}
		return b.Put(key(segID), []byte(note))
	})
}

// Note returns the note for a segment, "" when absent.
func (s *Store) Note(segID int) string {
	var note string
	s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketNotes).Get(key(segID)); v != nil {
			note = string(v)
		}
		return nil
	})
	return note
}

func key(segID int) []byte {
	// big-endian so bucket iteration follows segment order
	var k [8]byte
	binary.BigEndian.PutUint64(k[:], uint64(segID))
	return k[:]
}

func parseKey(k []byte) (int, error) {
	if len(k) != 8 {
		return 0, fmt.Errorf("malformed segment key % x", k)
	}
	return int(binary.BigEndian.Uint64(k)), nil
}

// Accept only known values; anything else becomes MarkNone.
func sanitizeMark(s string) Mark {
	switch Mark(s) {
	case MarkRed, MarkGreen, MarkAmber:
		return Mark(s)
	default:
		return MarkNone
	}
}
