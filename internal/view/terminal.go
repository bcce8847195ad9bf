package view

import (
	"fmt"
	"io"
	"sync"

	"github.com/anniehayho/contactlist/internal/list"
)

// TerminalView is a plain-text implementation of the presentation boundary.
// It renders each state snapshot as a block of lines and prints alerts as
// they arrive. The host GUI framework this stands in for owns layout and
// styling; the view only reflects the data and flags it is given.
type TerminalView struct {
	mu  sync.Mutex
	out io.Writer
}

// NewTerminalView creates a new terminal view writing to out.
func NewTerminalView(out io.Writer) *TerminalView {
	return &TerminalView{out: out}
}

// OnEvent implements list.Observer.
func (v *TerminalView) OnEvent(event list.Event) {
	v.mu.Lock()
	defer v.mu.Unlock()

	switch e := event.(type) {
	case *list.StateEvent:
		v.renderState(e.State)
	case *list.AlertEvent:
		fmt.Fprintf(v.out, "*** %s ***\n", e.Message)
	}
}

func (v *TerminalView) renderState(state list.State) {
	if state.Loading {
		fmt.Fprintln(v.out, "Loading contacts...")
		return
	}

	if len(state.Contacts) == 0 {
		fmt.Fprintln(v.out, "No contacts found")
		fmt.Fprintln(v.out, "[Retry]")
		return
	}

	fmt.Fprintf(v.out, "Contacts (%d)\n", len(state.Contacts))
	for _, contact := range state.Contacts {
		fmt.Fprintf(v.out, "  %s  %s\n", contact.Name, contact.Phone)
	}

	switch {
	case state.LoadingMore:
		fmt.Fprintln(v.out, "Loading more contacts...")
	case !state.HasMoreData:
		fmt.Fprintln(v.out, "-- end of list --")
	}
}
