package res

import "fmt"

const (
	variantOk    = "Ok"
	variantErr   = "Err"
	variantEmpty = "empty"
)

// StateError signals an unsafe accessor used on the wrong variant.
// It is a programmer-error marker, never produced by combinators.
type StateError struct {
	Requested string
	Active    string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("res: %s payload requested on a %s result", e.Requested, e.Active)
}
