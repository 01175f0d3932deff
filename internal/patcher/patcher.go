package patcher

import (
	"bufio"
	"fmt"
	"io"
)

// Outcome reports whether a schema was rewritten.
type Outcome int

const (
	// Untouched means the schema was copied through unchanged.
	Untouched Outcome = iota

	// Replaced means an edition declaration was rewritten to proto3 syntax.
	Replaced
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	if o == Replaced {
		return "replaced"
	}
	return "untouched"
}

// syntaxDecl is what replaces the edition declaration, excluding the
// terminator so trailing whitespace and comments survive.
const syntaxDecl = `syntax = "proto3"`

type stateKind int

const (
	stateNone stateKind = iota
	stateCommentPending
	stateCommentSingleLine
	stateCommentMultiLine
	stateCommentMultiLineEnd
	stateKeyword
	stateKeywordSpace
	stateEqual
	stateEqualSpace
	stateValue
	stateValueEscape
	stateValueClosed
	stateComplete
)

// state is one step of the edition scanner. start is the offset of the
// first byte that is still part of a possible edition declaration; resume
// is the kind to return to when a comment ends.
type state struct {
	kind     stateKind
	start    int
	keyword  int
	resume   stateKind
	found    bool
	spanFrom int
	spanTo   int
}

// keywordTail is what must follow the initial 'e' of the edition keyword.
const keywordTail = "dition"

func isSchemaSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

// next advances the scanner by one byte at offset pos.
func (s state) next(ch byte, pos int) state {
	switch s.kind {
	case stateComplete:
		return s

	case stateNone:
		switch {
		case ch == 'e':
			return state{kind: stateKeyword, start: pos}
		case ch == '/':
			return state{kind: stateCommentPending, start: pos, resume: stateNone}
		case isSchemaSpace(ch):
			return s
		default:
			return state{kind: stateComplete}
		}

	case stateCommentPending:
		switch ch {
		case '/':
			s.kind = stateCommentSingleLine
			return s
		case '*':
			s.kind = stateCommentMultiLine
			return s
		default:
			return state{kind: stateComplete}
		}

	case stateCommentSingleLine:
		if ch == '\n' {
			return state{kind: s.resume, start: s.start}
		}
		return s

	case stateCommentMultiLine:
		if ch == '*' {
			s.kind = stateCommentMultiLineEnd
		}
		return s

	case stateCommentMultiLineEnd:
		if ch == '/' {
			return state{kind: s.resume, start: s.start}
		}
		s.kind = stateCommentMultiLine
		return s

	case stateKeyword:
		if s.keyword < len(keywordTail) {
			if ch == keywordTail[s.keyword] {
				s.keyword++
				return s
			}
			return state{kind: stateComplete}
		}
		// Keyword fully matched; expect '=' next, possibly after
		// whitespace or comments.
		switch {
		case ch == '=':
			return state{kind: stateEqual, start: s.start}
		case ch == '/':
			return state{kind: stateCommentPending, start: s.start, resume: stateKeywordSpace}
		case isSchemaSpace(ch):
			return state{kind: stateKeywordSpace, start: s.start}
		default:
			return state{kind: stateComplete}
		}

	case stateKeywordSpace:
		switch {
		case ch == '=':
			return state{kind: stateEqual, start: s.start}
		case ch == '/':
			return state{kind: stateCommentPending, start: s.start, resume: stateKeywordSpace}
		case isSchemaSpace(ch):
			return s
		default:
			return state{kind: stateComplete}
		}

	case stateEqual, stateEqualSpace:
		switch {
		case ch == '"':
			return state{kind: stateValue, start: s.start}
		case ch == '/':
			return state{kind: stateCommentPending, start: s.start, resume: s.kind}
		case isSchemaSpace(ch):
			return state{kind: stateEqualSpace, start: s.start}
		default:
			return state{kind: stateComplete}
		}

	case stateValue:
		switch ch {
		case '"':
			return state{kind: stateValueClosed, start: s.start}
		case '\\':
			return state{kind: stateValueEscape, start: s.start}
		default:
			return s
		}

	case stateValueEscape:
		return state{kind: stateValue, start: s.start}

	case stateValueClosed:
		// pos is the byte after the closing quote; it is preserved.
		return state{kind: stateComplete, found: true, spanFrom: s.start, spanTo: pos}
	}

	return state{kind: stateComplete}
}

type boundsKind int

const (
	// boundsNone: nothing pending, flush the whole buffer.
	boundsNone boundsKind = iota

	// boundsPending: bytes before the offset are settled, the rest may
	// still belong to an edition declaration.
	boundsPending

	// boundsSpan: a full declaration was found between the offsets.
	boundsSpan
)

func (s state) bounds() (kind boundsKind, from, to int) {
	switch s.kind {
	case stateNone:
		return boundsNone, 0, 0
	case stateComplete:
		if s.found {
			return boundsSpan, s.spanFrom, s.spanTo
		}
		return boundsNone, 0, 0
	default:
		return boundsPending, s.start, 0
	}
}

// PatchEdition copies a schema from src to dst, rewriting a leading edition
// declaration to `syntax = "proto3"`. All other bytes pass through
// unchanged, including comments interleaved with the declaration's own
// tokens (which are consumed along with the declaration).
func PatchEdition(src io.Reader, dst io.Writer) (Outcome, error) {
	reader := bufio.NewReader(src)
	line := make([]byte, 0, 1<<14)
	current := state{kind: stateNone}
	outcome := Untouched

	for {
		chunk, readErr := reader.ReadBytes('\n')
		if len(chunk) > 0 {
			line = append(line, chunk...)

			// Re-scan the buffer: bytes retained from previous lines
			// were rewound to stateNone, so offsets stay consistent.
			for pos := 0; pos < len(line); pos++ {
				current = current.next(line[pos], pos)
			}

			switch kind, from, to := current.bounds(); kind {
			case boundsSpan:
				if err := writeAll(dst, line[:from], []byte(syntaxDecl), line[to:]); err != nil {
					return outcome, err
				}
				line = line[:0]
				outcome = Replaced
			case boundsPending:
				if err := writeAll(dst, line[:from]); err != nil {
					return outcome, err
				}
				line = append(line[:0], line[from:]...)
			default:
				if err := writeAll(dst, line); err != nil {
					return outcome, err
				}
				line = line[:0]
			}

			switch {
			case current.kind == stateComplete && current.found:
				current = state{kind: stateComplete}
			case current.kind == stateComplete:
				// Scanning is over; the rest streams through.
			default:
				current = state{kind: stateNone}
			}
		}

		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return outcome, fmt.Errorf("failed to read the input schema: %w", readErr)
		}
	}

	// Bytes held back waiting for the declaration to finish are flushed
	// verbatim once the input ends mid-declaration.
	if len(line) > 0 {
		if err := writeAll(dst, line); err != nil {
			return outcome, err
		}
	}

	return outcome, nil
}

func writeAll(dst io.Writer, chunks ...[]byte) error {
	for _, chunk := range chunks {
		if len(chunk) == 0 {
			continue
		}
		if _, err := dst.Write(chunk); err != nil {
			return fmt.Errorf("failed to write the patched schema: %w", err)
		}
	}
	return nil
}
