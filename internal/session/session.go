// Package session implements the tailoring session: the sole owner of the
// invariant that every visible mutation of the document is reachable
// through undo. All profile edits flow through reversible commands on a
// single history stack; the view layer never mutates the document
// directly.
package session

import (
	"fmt"

	"github.com/scaptail/scaptail/internal/history"
	"github.com/scaptail/scaptail/internal/tree"
	"github.com/scaptail/scaptail/internal/xccdf"
)

// FinishedFunc is notified exactly once when the session actually closes.
type FinishedFunc func(isNewProfile, accepted bool)

// ConfirmFunc answers the discard-confirmation prompt. Returning false
// aborts the close and leaves the session open.
type ConfirmFunc func() bool

// Session coordinates a tailoring edit of one profile over one benchmark.
type Session struct {
	policy    *xccdf.Policy
	profile   *xccdf.Profile
	benchmark *xccdf.Item

	stack *history.Stack
	sync  *tree.Synchronizer
	root  *tree.Node

	newProfile bool
	confirmed  bool
	closed     bool
	finished   FinishedFunc
	observer   Observer

	// Refresh hooks, set by the view layer. Commands invoke them after
	// every apply/invert so the docks re-read session state.
	OnProfileChanged func()
	OnItemChanged    func()

	// err holds the first failure raised inside a command's apply step;
	// the with-undo wrappers surface and clear it.
	err error
}

// Option configures a Session at construction.
type Option func(*Session)

// WithObserver attaches a session event observer.
func WithObserver(obs Observer) Option {
	return func(s *Session) {
		if obs != nil {
			s.observer = obs
		}
	}
}

// New creates a session for the given policy and benchmark. newProfile
// records whether the profile was created for this tailoring; finished is
// called when the session closes.
func New(policy *xccdf.Policy, benchmark *xccdf.Item, newProfile bool, finished FinishedFunc, opts ...Option) (*Session, error) {
	if policy == nil {
		return nil, fmt.Errorf("%w: nil policy", ErrConstruction)
	}
	if policy.Profile() == nil {
		return nil, fmt.Errorf("%w: policy has no profile", ErrConstruction)
	}
	if benchmark == nil {
		return nil, fmt.Errorf("%w: nil benchmark", ErrConstruction)
	}

	s := &Session{
		policy:     policy,
		profile:    policy.Profile(),
		benchmark:  benchmark,
		stack:      history.NewStack(),
		newProfile: newProfile,
		finished:   finished,
		observer:   NoopObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.sync = tree.NewSynchronizer(policy)
	s.root = s.sync.Build(benchmark)

	return s, nil
}

// Root returns the synchronized tree mirror of the benchmark.
func (s *Session) Root() *tree.Node { return s.root }

// Stack returns the undo history.
func (s *Session) Stack() *history.Stack { return s.stack }

// Synchronizer returns the tree synchronizer, whose in-progress guard the
// view layer must check before translating edit events into commands.
func (s *Session) Synchronizer() *tree.Synchronizer { return s.sync }

// Policy returns the evaluated policy.
func (s *Session) Policy() *xccdf.Policy { return s.policy }

// Benchmark returns the benchmark root item.
func (s *Session) Benchmark() *xccdf.Item { return s.benchmark }

// ProfileID returns the edited profile's id.
func (s *Session) ProfileID() string { return s.profile.ID }

// IsNewProfile reports whether the profile was created for this session.
func (s *Session) IsNewProfile() bool { return s.newProfile }

// Confirmed reports whether the changes have been accepted.
func (s *Session) Confirmed() bool { return s.confirmed }

// ── mutation primitives ──────────────────────────────────────────────────────

// SetItemSelected writes a selection override for item to both the
// profile and the working policy, then verifies the effective selection
// by reading it back. A mismatch means the overlay mechanism is broken
// and is fatal, not retried.
func (s *Session) SetItemSelected(item *xccdf.Item, selected bool) error {
	s.profile.AddSelect(item.ID, selected)
	s.policy.AddSelect(item.ID, selected)

	if s.policy.EffectiveSelected(item) != selected {
		return fmt.Errorf("%w: select override for %q did not take effect (want selected=%t)",
			ErrInconsistentState, item.ID, selected)
	}
	return nil
}

// CurrentValueOf reads a value item's effective content through the
// policy: profile override wins over the default instance.
func (s *Session) CurrentValueOf(value *xccdf.Item) string {
	return s.policy.ValueOf(value)
}

// SetValueValue overwrites the profile's value override for value.
func (s *Session) SetValueValue(value *xccdf.Item, newText string) {
	s.profile.AddSetValue(value.ID, newText)

	assertf(s.CurrentValueOf(value) == newText,
		"set-value override for %q did not round-trip: want %q, got %q",
		value.ID, newText, s.CurrentValueOf(value))
}

// ProfileTitle returns the profile's preferred-language title.
func (s *Session) ProfileTitle() string { return s.profile.Title() }

// ProfileDescription returns the profile's preferred-language description.
func (s *Session) ProfileDescription() string { return s.profile.Description() }

// SetProfileTitle edits the profile title's default-language text entry.
func (s *Session) SetProfileTitle(title string) error {
	entries, ok := xccdf.SetPreferredText(s.profile.Titles, title)
	if !ok {
		return fmt.Errorf("%w: profile %q has no title entry", ErrNoEditableText, s.profile.ID)
	}
	s.profile.Titles = entries

	assertf(s.ProfileTitle() == title, "profile title did not round-trip: %q", title)
	return nil
}

// SetProfileDescription edits the profile description's default-language
// text entry.
func (s *Session) SetProfileDescription(description string) error {
	entries, ok := xccdf.SetPreferredText(s.profile.Descriptions, description)
	if !ok {
		return fmt.Errorf("%w: profile %q has no description entry", ErrNoEditableText, s.profile.ID)
	}
	s.profile.Descriptions = entries

	assertf(s.ProfileDescription() == description, "profile description did not round-trip: %q", description)
	return nil
}

// ── undoable edits ───────────────────────────────────────────────────────────

// SetItemSelectedWithUndo records and applies a selection toggle for the
// item mirrored by node.
func (s *Session) SetItemSelectedWithUndo(node *tree.Node, selected bool) error {
	s.push(newSelectCommand(s, node, selected))
	return s.takeErr()
}

// SetProfileTitleWithUndo records and applies a title change.
func (s *Session) SetProfileTitleWithUndo(newTitle string) error {
	s.push(newTitleCommand(s, s.ProfileTitle(), newTitle))
	return s.takeErr()
}

// SetProfileDescriptionWithUndo records and applies a description change.
func (s *Session) SetProfileDescriptionWithUndo(newDescription string) error {
	s.push(newDescriptionCommand(s, s.ProfileDescription(), newDescription))
	return s.takeErr()
}

// SetValueValueWithUndo records and applies a value content change.
func (s *Session) SetValueValueWithUndo(value *xccdf.Item, newText string) error {
	s.push(newValueCommand(s, value, s.CurrentValueOf(value), newText))
	return s.takeErr()
}

// HandleNodeToggled translates an interactive checkbox toggle into a
// command. It no-ops while a synchronize pass is writing checkbox state,
// for value nodes, and when the checkbox already matches the document.
// The enablement delta is cascaded in every case.
func (s *Session) HandleNodeToggled(node *tree.Node, checked bool) error {
	if s.sync.InProgress() {
		return nil
	}
	item := node.Item
	if item == nil || item.Kind == xccdf.KindValue {
		return nil
	}

	if checked != s.policy.EffectiveSelected(item) {
		if err := s.SetItemSelectedWithUndo(node, checked); err != nil {
			return err
		}
	}

	tree.CascadeDisabledState(node, checked)
	return nil
}

// Undo reverts the newest applied command.
func (s *Session) Undo() error {
	err := s.stack.Undo()
	if err == nil {
		err = s.takeErr()
	}
	s.observer.Observe(Event{Action: "undo", Index: s.stack.Index(), Len: s.stack.Len(), Err: err})
	return err
}

// Redo re-applies the newest undone command.
func (s *Session) Redo() error {
	err := s.stack.Redo()
	if err == nil {
		err = s.takeErr()
	}
	s.observer.Observe(Event{Action: "redo", Index: s.stack.Index(), Len: s.stack.Len(), Err: err})
	return err
}

// SetHistoryIndex jumps the history to an arbitrary recorded position.
func (s *Session) SetHistoryIndex(index int) error {
	s.stack.SetIndex(index)
	err := s.takeErr()
	s.observer.Observe(Event{Action: "set_index", Index: s.stack.Index(), Len: s.stack.Len(), Err: err})
	return err
}

// ── lifecycle ────────────────────────────────────────────────────────────────

// Confirm marks the session's changes as accepted.
func (s *Session) Confirm() {
	s.confirmed = true
}

// DiscardProfile marks the session as a fresh-profile removal request:
// changes are not accepted and the profile is reported as new on close.
func (s *Session) DiscardProfile() {
	s.confirmed = false
	s.newProfile = true
}

// Close finishes the session. When the changes are unconfirmed, confirm
// (if non-nil) is consulted first; declining aborts the close and the
// session stays open. An unconfirmed close rolls the history back to
// position zero, undoing every change, before the finished callback fires
// with (isNewProfile, accepted). Returns whether the session closed.
func (s *Session) Close(confirm ConfirmFunc) bool {
	if s.closed {
		return true
	}

	if !s.confirmed {
		if confirm != nil && !confirm() {
			return false
		}
		s.stack.SetIndex(0)
	}

	s.closed = true
	s.observer.Observe(Event{Action: "close", Index: s.stack.Index(), Len: s.stack.Len()})

	if s.finished != nil {
		s.finished(s.newProfile, s.confirmed)
	}
	return true
}

// ConfirmAndClose accepts the changes and closes without prompting.
func (s *Session) ConfirmAndClose() {
	s.Confirm()
	s.Close(nil)
}

// ── internals ────────────────────────────────────────────────────────────────

func (s *Session) push(cmd history.Command) {
	s.stack.Push(cmd)
	s.observer.Observe(Event{
		Action: "push",
		Text:   cmd.Text(),
		Index:  s.stack.Index(),
		Len:    s.stack.Len(),
		Err:    s.err,
	})
}

// noteErr records the first failure raised inside a command apply step.
func (s *Session) noteErr(err error) {
	if err != nil && s.err == nil {
		s.err = err
	}
}

func (s *Session) takeErr() error {
	err := s.err
	s.err = nil
	return err
}

func (s *Session) refreshProfileDock() {
	if s.OnProfileChanged != nil {
		s.OnProfileChanged()
	}
}

func (s *Session) refreshItemDock() {
	if s.OnItemChanged != nil {
		s.OnItemChanged()
	}
}
