package translate

import "github.com/statmigrate/spssr/translators"

// StructuralError reports a script whose statement structure is broken: a DO
// REPEAT without its END REPEAT, or a statement block with no lines. It always
// aborts the run with no partial output.
type StructuralError struct {
	Msg string
}

func (e *StructuralError) Error() string {
	return "structural error: " + e.Msg
}

// DispatchError is the unknown-command error defined next to the registry.
// Aliased here so the pipeline's whole error taxonomy is reachable from this
// package.
type DispatchError = translators.DispatchError
