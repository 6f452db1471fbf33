package app

import (
	"errors"
	"fmt"
	"strings"

	"todo-tui/model"
)

var (
	ErrOutOfRange  = errors.New("index out of range")
	ErrInvalidTask = errors.New("task text must not be empty or span lines")
	ErrNoStorage   = errors.New("no storage configured")
	ErrUnknownSeq  = errors.New("unknown sequence")
)

// Storage loads and saves the two task sequences.
type Storage interface {
	Load() (todo, done []string, err error)
	Save(todo, done []string) error
}

// Service holds the pending and completed sequences and the rules for
// moving tasks between them.
//
// Removal by position swaps the last item into the freed slot, so after
// Remove, MarkDone or MarkTodo at i the former last item of the source
// sequence sits at i.
type Service struct {
	pending   []string
	completed []string
	storage   Storage
	dirty     bool
}

// NewService creates a service over copies of the given sequences.
// It has no storage; Persist fails until one is attached with Open.
func NewService(todo, done []string) *Service {
	return &Service{
		pending:   cloneStrings(todo),
		completed: cloneStrings(done),
	}
}

// Open loads both sequences from st and keeps st for Persist.
func Open(st Storage) (*Service, error) {
	todo, done, err := st.Load()
	if err != nil {
		return nil, err
	}
	svc := NewService(todo, done)
	svc.storage = st
	return svc, nil
}

// Persist writes the current sequences to storage.
func (s *Service) Persist() error {
	if s.storage == nil {
		return ErrNoStorage
	}
	if err := s.storage.Save(s.Pending(), s.Completed()); err != nil {
		return err
	}
	s.dirty = false
	return nil
}

// Dirty reports whether the sequences changed since the last Open or Persist.
func (s *Service) Dirty() bool {
	return s.dirty
}

// Pending returns a copy of the pending sequence.
func (s *Service) Pending() []string {
	return cloneStrings(s.pending)
}

// Completed returns a copy of the completed sequence.
func (s *Service) Completed() []string {
	return cloneStrings(s.completed)
}

// Add appends text to seq. Blank text and text spanning lines are rejected.
func (s *Service) Add(seq model.Sequence, text string) error {
	text = strings.TrimSpace(text)
	if text == "" || strings.ContainsAny(text, "\r\n") {
		return ErrInvalidTask
	}
	list, err := s.sequence(seq)
	if err != nil {
		return err
	}
	*list = append(*list, text)
	s.dirty = true
	return nil
}

// Remove deletes and returns the task at index in seq using swap-remove.
func (s *Service) Remove(seq model.Sequence, index int) (string, error) {
	list, err := s.sequence(seq)
	if err != nil {
		return "", err
	}
	if index < 0 || index >= len(*list) {
		return "", fmt.Errorf("%w: %s[%d] of %d", ErrOutOfRange, seq, index, len(*list))
	}
	items := *list
	last := len(items) - 1
	text := items[index]
	items[index] = items[last]
	*list = items[:last]
	s.dirty = true
	return text, nil
}

// MarkDone moves pending[index] to the end of completed.
func (s *Service) MarkDone(index int) error {
	return s.move(model.Pending, model.Completed, index)
}

// MarkTodo moves completed[index] to the end of pending.
func (s *Service) MarkTodo(index int) error {
	return s.move(model.Completed, model.Pending, index)
}

func (s *Service) move(from, to model.Sequence, index int) error {
	text, err := s.Remove(from, index)
	if err != nil {
		return err
	}
	dst, err := s.sequence(to)
	if err != nil {
		return err
	}
	*dst = append(*dst, text)
	return nil
}

// Locate maps a row of the All tab to its owning sequence: rows below
// len(pending) are pending, the rest are completed.
func (s *Service) Locate(index int) (model.Location, error) {
	total := len(s.pending) + len(s.completed)
	if index < 0 || index >= total {
		return model.Location{}, fmt.Errorf("%w: row %d of %d", ErrOutOfRange, index, total)
	}
	if index < len(s.pending) {
		return model.Location{Seq: model.Pending, Index: index}, nil
	}
	return model.Location{Seq: model.Completed, Index: index - len(s.pending)}, nil
}

// Resolve maps a visible row of tab to a location.
func (s *Service) Resolve(tab model.Tab, row int) (model.Location, error) {
	switch tab {
	case model.TabAll:
		return s.Locate(row)
	case model.TabDone:
		if row < 0 || row >= len(s.completed) {
			return model.Location{}, fmt.Errorf("%w: row %d of %d", ErrOutOfRange, row, len(s.completed))
		}
		return model.Location{Seq: model.Completed, Index: row}, nil
	default:
		if row < 0 || row >= len(s.pending) {
			return model.Location{}, fmt.Errorf("%w: row %d of %d", ErrOutOfRange, row, len(s.pending))
		}
		return model.Location{Seq: model.Pending, Index: row}, nil
	}
}

// Toggle flips the completion state of the task shown at row of tab.
// It returns the location the task was moved from.
func (s *Service) Toggle(tab model.Tab, row int) (model.Location, error) {
	loc, err := s.Resolve(tab, row)
	if err != nil {
		return model.Location{}, err
	}
	if loc.Seq == model.Pending {
		return loc, s.MarkDone(loc.Index)
	}
	return loc, s.MarkTodo(loc.Index)
}

// Visible returns the display rows for tab. It does not mutate the service.
func (s *Service) Visible(tab model.Tab) []string {
	out := make([]string, 0, s.Len(tab))
	if tab != model.TabDone {
		for _, t := range s.pending {
			out = append(out, model.Display(model.Pending, t))
		}
	}
	if tab != model.TabTodo {
		for _, t := range s.completed {
			out = append(out, model.Display(model.Completed, t))
		}
	}
	return out
}

// Len returns the number of rows tab shows.
func (s *Service) Len(tab model.Tab) int {
	switch tab {
	case model.TabTodo:
		return len(s.pending)
	case model.TabDone:
		return len(s.completed)
	default:
		return len(s.pending) + len(s.completed)
	}
}

// Text returns the description stored at loc.
func (s *Service) Text(loc model.Location) (string, error) {
	list, err := s.sequence(loc.Seq)
	if err != nil {
		return "", err
	}
	if loc.Index < 0 || loc.Index >= len(*list) {
		return "", fmt.Errorf("%w: %s", ErrOutOfRange, loc)
	}
	return (*list)[loc.Index], nil
}

func (s *Service) sequence(seq model.Sequence) (*[]string, error) {
	switch seq {
	case model.Pending:
		return &s.pending, nil
	case model.Completed:
		return &s.completed, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownSeq, seq)
	}
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
