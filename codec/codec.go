// Package codec encodes and decodes the simulation's text snapshot format.
//
// The format is line-oriented. Each entity renders as one colon-delimited
// line with a fixed field count per kind tag; identifier lists within a
// field are comma-delimited. There is no escaping, so free-text fields
// (names, destinations) must not contain the delimiter characters.
package codec

import (
	"fmt"
	"strconv"
	"strings"
)

// A DecodeError reports a violation of the snapshot format. Fragment is the
// offending piece of input; Err, when non-nil, is the underlying cause.
type DecodeError struct {
	Fragment string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode %q: %v", e.Fragment, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func decodeErrorf(fragment, format string, args ...any) *DecodeError {
	return &DecodeError{
		Fragment: fragment,
		Err:      fmt.Errorf(format, args...),
	}
}

func wrapDecodeError(fragment string, err error) *DecodeError {
	if decodeErr, ok := err.(*DecodeError); ok {
		return decodeErr
	}

	return &DecodeError{Fragment: fragment, Err: err}
}

// kindOf returns the kind tag of an encoding line, the text before the
// first delimiter.
func kindOf(line string) string {
	kind, _, _ := strings.Cut(line, ":")
	return kind
}

// splitFields splits a colon-delimited encoding and checks the field count.
func splitFields(line string, want int) ([]string, error) {
	fields := strings.Split(line, ":")
	if len(fields) != want {
		return nil, decodeErrorf(
			line, "expected %d fields, got %d", want, len(fields))
	}

	return fields, nil
}

func parseInt(line, field string) (int, error) {
	value, err := strconv.Atoi(field)
	if err != nil {
		return 0, decodeErrorf(line, "not a number: %q", field)
	}

	return value, nil
}

func parseInt64(line, field string) (int64, error) {
	value, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		return 0, decodeErrorf(line, "not a number: %q", field)
	}

	return value, nil
}

// parseTokenList splits a comma-delimited list field and checks it against
// the declared count. An empty field is a zero-element list; an empty
// element anywhere else means a stray delimiter.
func parseTokenList(line, field string, count int) ([]string, error) {
	if field == "" {
		if count != 0 {
			return nil, decodeErrorf(
				line, "expected %d list elements, got 0", count)
		}

		return nil, nil
	}

	tokens := strings.Split(field, ",")
	if len(tokens) != count {
		return nil, decodeErrorf(
			line, "expected %d list elements, got %d", count, len(tokens))
	}

	for _, token := range tokens {
		if token == "" {
			return nil, decodeErrorf(line, "empty list element")
		}
	}

	return tokens, nil
}

func parseIDList(line, field string, count int) ([]int, error) {
	tokens, err := parseTokenList(line, field, count)
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(tokens))
	for _, token := range tokens {
		id, err := parseInt(line, token)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func joinIDs(ids []int) string {
	tokens := make([]string, 0, len(ids))
	for _, id := range ids {
		tokens = append(tokens, strconv.Itoa(id))
	}

	return strings.Join(tokens, ",")
}
