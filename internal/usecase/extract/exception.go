package extract

import "strings"

// ExceptionClass is the class value the backend's debug page puts on the
// element that holds the exception message.
const ExceptionClass = "exception_value"

// Attr is a single tag attribute as delivered by a markup event source.
type Attr struct {
	Key string
	Val string
}

// Sink receives markup events in document order.
// Tag names are expected lower-cased, text already entity-decoded.
type Sink interface {
	StartTag(name string, attrs []Attr)
	Text(data string)
	EndTag(name string)
}

type scanState int

const (
	stateOutside scanState = iota
	stateCapturing
)

// ExceptionScanner is a two-state automaton that accumulates the text of
// <h4 class="exception_value"> and <pre class="exception_value"> elements.
//
// It only tracks whether it is capturing, not which tag opened the capture:
// any </h4> or </pre> ends it. Text from several marked elements is
// concatenated in encounter order without trimming.
type ExceptionScanner struct {
	state scanState
	text  strings.Builder
}

var _ Sink = (*ExceptionScanner)(nil)

func NewExceptionScanner() *ExceptionScanner {
	return &ExceptionScanner{state: stateOutside}
}

func (s *ExceptionScanner) StartTag(name string, attrs []Attr) {
	if !isMarkerTag(name) {
		return
	}
	for _, a := range attrs {
		if a.Key == "class" && a.Val == ExceptionClass {
			s.state = stateCapturing
			return
		}
	}
}

func (s *ExceptionScanner) Text(data string) {
	if s.state == stateCapturing {
		s.text.WriteString(data)
	}
}

func (s *ExceptionScanner) EndTag(name string) {
	if isMarkerTag(name) {
		s.state = stateOutside
	}
}

// Capturing reports whether the scanner is inside a marked element.
func (s *ExceptionScanner) Capturing() bool {
	return s.state == stateCapturing
}

// Result returns the accumulated text; empty when no marker matched.
func (s *ExceptionScanner) Result() string {
	return s.text.String()
}

func isMarkerTag(name string) bool {
	return name == "h4" || name == "pre"
}
