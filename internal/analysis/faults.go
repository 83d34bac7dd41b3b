// Package analysis implements the asynchronous image-analysis pipeline:
// a Submitter that enqueues jobs, a Worker that processes queue deliveries,
// and a Reader that serves polled results. Collaborators (queue, object
// store, model, result store) are injected as interfaces so each piece can
// be exercised against fakes.
package analysis

import "errors"

// ErrInvalidRequest marks caller-supplied input that failed a structural
// check. It is never retried and always surfaces as a client error.
var ErrInvalidRequest = errors.New("invalid request")

// FaultKind classifies why a job failed, which decides whether queue
// redelivery can help.
type FaultKind int

const (
	// FaultNone means the job was processed successfully.
	FaultNone FaultKind = iota

	// FaultMalformedMessage is a queue envelope that does not decode into a
	// job, or lacks its identifier or object key. Redelivery cannot fix it.
	FaultMalformedMessage

	// FaultTransient is an external dependency fault (image fetch, model
	// invocation, result write). A later retry may succeed.
	FaultTransient

	// FaultMalformedPayload is model output that violates the structured
	// output contract. Retrying the same image is unlikely to change a
	// systematically malformed response, so it is treated as permanent.
	FaultMalformedPayload
)

// String returns a log-friendly name for the fault kind.
func (k FaultKind) String() string {
	switch k {
	case FaultNone:
		return "none"
	case FaultMalformedMessage:
		return "malformed_message"
	case FaultTransient:
		return "transient"
	case FaultMalformedPayload:
		return "malformed_payload"
	default:
		return "unknown"
	}
}
