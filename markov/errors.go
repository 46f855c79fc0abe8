package markov

import "errors"

var (
	// ErrUnmatchedGroupMarker is returned by the tokenizer when an
	// opening group marker has no closing partner, or a closing marker
	// appears with no group open.
	ErrUnmatchedGroupMarker = errors.New("markov: unmatched group marker")

	// ErrNilNode is returned when an operation requires a node and
	// receives nil.
	ErrNilNode = errors.New("markov: nil node")

	// ErrForeignNode is returned when a node passed to a graph
	// operation belongs to a different graph, or has already been
	// removed from this one.
	ErrForeignNode = errors.New("markov: node does not belong to this graph")
)
