package translators

import "fmt"

// DispatchError reports a classified command key with no registered
// translator. Source carries the offending statement's first line so the
// failing statement can be found in the input. It is returned both by the
// pipeline's pre-dispatch check and by translators that dispatch interior
// statements themselves.
type DispatchError struct {
	Key    string
	Source string
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("unrecognized command %q (no translator %s_to_r) in statement: %s",
		e.Key, e.Key, e.Source)
}
