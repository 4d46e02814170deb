package ensemble

import "github.com/moznion/go-optional"

// OnPathEvaluatedCallback is called after each path has been evaluated.
// done counts finished paths, so it increases by one on every call.
// Returning an error aborts the evaluation.
type OnPathEvaluatedCallback func(done int, total int) error

// Callbacks holds the optional progress hooks of an evaluation.
// Callbacks are never invoked concurrently.
type Callbacks struct {
	OnPathEvaluated optional.Option[OnPathEvaluatedCallback]
}
