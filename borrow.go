package cnf

// borrowTracker implements the outstanding-view discipline from the spec's
// concurrency model (§5): mutation is rejected while any view returned by
// Flat is still live. Go has no borrow checker, so the contract is a
// runtime counter the caller must honor by calling Release on the View it
// received; this mirrors the source's memoryview + reference-count
// approach (see spec design note "Borrowed views and mutation safety").
type borrowTracker struct {
	count int
}

func (b *borrowTracker) acquire() { b.count++ }

func (b *borrowTracker) release() {
	if b.count > 0 {
		b.count--
	}
}

func (b *borrowTracker) live() bool { return b.count > 0 }

// View is a zero-copy, read-only handle onto a ClauseList's packed int32
// buffer. It must be released with Release once the caller is done reading
// it; until then, any mutating call on the originating list (AddClause,
// Append, Translate) fails with ErrBorrowed.
//
// A View returned by Borrow holds a single clause's literals (no
// terminating 0). A View returned by Flat holds the whole packed buffer,
// terminators included, matching the numerical-array interop surface from
// spec.md §6 — use Raw for that case and Literals only when the view is
// known not to contain terminator zeros.
type View[K Kind] struct {
	raw      []int32
	tracker  *borrowTracker
	released bool
}

func newView[K Kind](raw []int32, tracker *borrowTracker) *View[K] {
	tracker.acquire()
	return &View[K]{raw: raw, tracker: tracker}
}

// Raw returns the borrowed buffer exactly as stored, including any
// terminating zeros (the view Flat returns is always of this form).
func (v *View[K]) Raw() []int32 { return v.raw }

// Literals converts the borrowed buffer to literals. It must only be
// called on a per-clause view (from Borrow), never on a whole-buffer view
// from Flat, since Literal values are always nonzero.
func (v *View[K]) Literals() []Literal { return int32sToLiterals(v.raw) }

// Release ends the borrow, allowing the originating list to be mutated
// again. Calling Release more than once is a no-op.
func (v *View[K]) Release() {
	if v.released {
		return
	}
	v.released = true
	v.tracker.release()
}
