package inline

import "fmt"

// InvalidElementError is raised when an element is constructed with a tag
// outside of the inline allow-list. It is a structural error: the render
// attempt must be aborted, not retried.
type InvalidElementError struct {
	Tag string
}

func (e *InvalidElementError) Error() string {
	return fmt.Sprintf("Invalid element: %s is not an inline element.", e.Tag)
}
