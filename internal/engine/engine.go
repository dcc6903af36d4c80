package engine

// Notifier is the cheat panel's view of a cheat engine. Notify asserts the
// desired state of one cheat: active applies its effect, inactive removes it.
// The panel re-asserts every entry on each rebuild, so implementations must
// treat repeated calls with the same state as a no-op.
//
// index is the entry's current position in the panel, passed along for
// logging and diagnostics only.
type Notifier interface {
	Notify(active bool, code string, index int) error
}

// Notification is one recorded Notify call.
type Notification struct {
	Active bool
	Code   string
	Index  int
}

// Recorder is a Notifier that remembers every call in order. Test double.
type Recorder struct {
	Calls []Notification
	Err   error // returned from every Notify when set
}

func (r *Recorder) Notify(active bool, code string, index int) error {
	r.Calls = append(r.Calls, Notification{Active: active, Code: code, Index: index})
	return r.Err
}
