package model

import "fmt"

// Tab selects which tasks are shown.
type Tab int

const (
	TabAll Tab = iota
	TabTodo
	TabDone
)

// Tabs lists the tabs in the order they are drawn and cycled.
var Tabs = []Tab{TabAll, TabTodo, TabDone}

// Next returns the tab that follows t: All -> Todo -> Done -> All.
func (t Tab) Next() Tab {
	switch t {
	case TabAll:
		return TabTodo
	case TabTodo:
		return TabDone
	default:
		return TabAll
	}
}

func (t Tab) String() string {
	switch t {
	case TabTodo:
		return "Todo"
	case TabDone:
		return "Done"
	default:
		return "All"
	}
}

// Target is the sequence new items land in when added from this tab.
// All adds to pending by convention.
func (t Tab) Target() Sequence {
	if t == TabDone {
		return Completed
	}
	return Pending
}

// Sequence names one of the two task sequences.
type Sequence int

const (
	Pending Sequence = iota
	Completed
)

func (s Sequence) String() string {
	if s == Completed {
		return "completed"
	}
	return "pending"
}

// Marker is the checkbox drawn in front of items of s.
func (s Sequence) Marker() string {
	if s == Completed {
		return MarkerDone
	}
	return MarkerTodo
}

const (
	MarkerTodo = "[ ]"
	MarkerDone = "[x]"
)

// Location addresses a task inside one sequence.
type Location struct {
	Seq   Sequence
	Index int
}

func (l Location) String() string {
	return fmt.Sprintf("%s[%d]", l.Seq, l.Index)
}

// Display formats a task description as a visible list row.
func Display(seq Sequence, text string) string {
	return seq.Marker() + " " + text
}
