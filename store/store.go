package store

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	tagTodo = "TODO: "
	tagDone = "DONE: "
)

// DefaultBackups is the number of rotating backups kept when none is configured.
const DefaultBackups = 5

var (
	ErrStorageUnavailable = errors.New("task file unavailable")
	ErrWriteFailure       = errors.New("task file write failed")
)

// File stores tasks in a line-tagged text file:
//
//	TODO: <description>
//	DONE: <description>
//
// Tags match case-insensitively; any other line is ignored.
type File struct {
	Path string
	// Backups is the number of rotating <path>.bak.<timestamp> copies kept
	// on save. Zero keeps only <path>.bak.
	Backups int
}

// NewFile returns a File for path with the default backup rotation.
func NewFile(path string) *File {
	return &File{Path: path, Backups: DefaultBackups}
}

// Load reads the task file. A missing or unreadable file is reported as
// ErrStorageUnavailable; the file is never created here.
func (f *File) Load() ([]string, []string, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	todo, done, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %w", ErrStorageUnavailable, f.Path, err)
	}
	return todo, done, nil
}

// Save writes pending then completed tasks using a temporary file and an
// atomic rename. The previous content is kept as <path>.bak.
func (f *File) Save(todo, done []string) error {
	if err := f.save(Format(todo, done)); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	return nil
}

func (f *File) save(data []byte) error {
	if err := ensureDir(f.Path); err != nil {
		return err
	}
	if err := f.backup(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.Path), filepath.Base(f.Path)+".tmp-")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmpName, f.Path)
}

// Create makes an empty task file at path unless one already exists.
// It reports whether a file was created.
func Create(path string) (bool, error) {
	if err := ensureDir(path); err != nil {
		return false, err
	}
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return false, nil
		}
		return false, err
	}
	return true, file.Close()
}

// Parse reads tagged lines from r.
func Parse(r io.Reader) ([]string, []string, error) {
	todo := []string{}
	done := []string{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		switch {
		case hasTag(line, tagTodo):
			if text := strings.TrimSpace(line[len(tagTodo):]); text != "" {
				todo = append(todo, text)
			}
		case hasTag(line, tagDone):
			if text := strings.TrimSpace(line[len(tagDone):]); text != "" {
				done = append(done, text)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}
	return todo, done, nil
}

// Format renders pending tasks first, then completed ones, one per line
// with a trailing newline.
func Format(todo, done []string) []byte {
	var buf bytes.Buffer
	for _, t := range todo {
		buf.WriteString(tagTodo)
		buf.WriteString(t)
		buf.WriteByte('\n')
	}
	for _, t := range done {
		buf.WriteString(tagDone)
		buf.WriteString(t)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

func hasTag(line, tag string) bool {
	return len(line) >= len(tag) && strings.EqualFold(line[:len(tag)], tag)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}

func (f *File) backup() error {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	if err := os.WriteFile(f.Path+".bak", data, 0o644); err != nil {
		return err
	}
	if f.Backups <= 0 {
		return nil
	}

	timestamp := time.Now().UTC().Format("20060102-150405.000000000")
	rotatingPath := fmt.Sprintf("%s.bak.%s", f.Path, timestamp)
	if err := os.WriteFile(rotatingPath, data, 0o644); err != nil {
		return err
	}

	return f.pruneRotatingBackups()
}

func (f *File) pruneRotatingBackups() error {
	files, err := filepath.Glob(f.Path + ".bak.*")
	if err != nil {
		return err
	}
	if len(files) <= f.Backups {
		return nil
	}

	sort.Strings(files)
	toDelete := files[:len(files)-f.Backups]
	for _, old := range toDelete {
		if err := os.Remove(old); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	return nil
}
