// Package history provides a linear, position-addressable undo stack.
//
// Unlike a two-stack undo/redo design, the history is a single ordered
// command list plus a current index: commands[:index] are applied,
// commands[index:] are the redo tail. SetIndex walks the list one command
// at a time, which lets callers jump directly to any recorded position
// (including a full rollback to zero).
package history

import "errors"

// Common errors for history traversal.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// NoMergeID marks commands that never coalesce with their predecessor.
const NoMergeID = -1

// Command is a reversible edit. Redo applies it, Undo reverts it; both
// must be safe to call repeatedly in alternation.
type Command interface {
	// ID is the merge-compatibility tag. Commands whose ID is NoMergeID
	// are never merged.
	ID() int

	Redo()
	Undo()

	// MergeWith absorbs other into the receiver, widening the receiver's
	// old-to-new delta, and reports whether the merge happened. It is only
	// called when other has the same ID as the receiver.
	MergeWith(other Command) bool

	// Text is the human-readable description shown in the history view.
	Text() string
}

// Stack is the ordered history of applied commands. It is the sole
// mutation path for whatever state its commands edit: Push applies the
// command as a side effect, so callers never invoke Redo themselves.
type Stack struct {
	commands []Command
	index    int
}

// NewStack creates an empty history.
func NewStack() *Stack {
	return &Stack{}
}

// Push applies cmd and records it. Any redo tail beyond the current index
// is discarded first (the history diverges). If the command on top of the
// applied range carries the same merge id and agrees to merge, it absorbs
// cmd instead of a new entry being appended.
func (s *Stack) Push(cmd Command) {
	// History diverges: drop commands that were undone but not redone.
	s.commands = s.commands[:s.index]

	cmd.Redo()

	if s.index > 0 && cmd.ID() != NoMergeID {
		top := s.commands[s.index-1]
		if top.ID() == cmd.ID() && top.MergeWith(cmd) {
			return
		}
	}

	s.commands = append(s.commands, cmd)
	s.index++
}

// SetIndex moves the current position to target, applying the redo of
// each skipped command when moving forward or the undo when moving
// backward. Targets outside [0, Len()] are clamped.
func (s *Stack) SetIndex(target int) {
	if target < 0 {
		target = 0
	}
	if target > len(s.commands) {
		target = len(s.commands)
	}
	for s.index < target {
		s.commands[s.index].Redo()
		s.index++
	}
	for s.index > target {
		s.index--
		s.commands[s.index].Undo()
	}
}

// Undo reverts the command at the current position.
func (s *Stack) Undo() error {
	if s.index == 0 {
		return ErrNothingToUndo
	}
	s.SetIndex(s.index - 1)
	return nil
}

// Redo re-applies the next undone command.
func (s *Stack) Redo() error {
	if s.index == len(s.commands) {
		return ErrNothingToRedo
	}
	s.SetIndex(s.index + 1)
	return nil
}

// Index returns the current position: the number of applied commands.
func (s *Stack) Index() int { return s.index }

// Len returns the total number of recorded commands.
func (s *Stack) Len() int { return len(s.commands) }

// CanUndo reports whether at least one command can be undone.
func (s *Stack) CanUndo() bool { return s.index > 0 }

// CanRedo reports whether at least one undone command can be re-applied.
func (s *Stack) CanRedo() bool { return s.index < len(s.commands) }

// IsClean reports whether the history is at position zero with no
// outstanding applied commands.
func (s *Stack) IsClean() bool { return s.index == 0 }

// Texts returns the description of every recorded command, in order.
func (s *Stack) Texts() []string {
	texts := make([]string, len(s.commands))
	for i, cmd := range s.commands {
		texts[i] = cmd.Text()
	}
	return texts
}

// Clear drops all history without touching the edited state.
func (s *Stack) Clear() {
	s.commands = nil
	s.index = 0
}
