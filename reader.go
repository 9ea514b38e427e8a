package jsonval

import (
	"io"
	"strconv"
	"strings"
	"unicode"
)

// numberRunes is the set of characters the reader accepts inside a numeric
// token. Validation is left to strconv.
const numberRunes = "0123456789+-.eE"

// Reader is a recursive-descent parser producing Values from a character
// stream. It keeps no state beyond the stream cursor and a byte offset;
// the only look-ahead is a single pushed-back rune.
//
// A Reader can be driven in a loop to read a sequence of values; a clean
// end of input is reported as io.EOF, while malformed input is reported as
// a *ParseError carrying the byte offset.
type Reader struct {
	r    io.RuneScanner
	off  int64
	last int // byte size of the most recently read rune
}

// NewReader returns a Reader consuming rs.
func NewReader(rs io.RuneScanner) *Reader {
	return &Reader{r: rs}
}

// Offset returns the number of bytes consumed so far.
func (rd *Reader) Offset() int64 { return rd.off }

// Parse reads a single value from s.
func Parse(s string) (Value, error) {
	return NewReader(strings.NewReader(s)).ReadValue()
}

// ParseDocument reads a single object from s.
func ParseDocument(s string) (Document, error) {
	return NewReader(strings.NewReader(s)).ReadDocument()
}

// ReadValue reads the next value from the stream.
//
// A closing ']' or '}' is consumed and reported as an Undefined value with
// a nil error; this is the end-of-sequence sentinel array and object
// parsing loops terminate on. A single leading ',' is tolerated and
// skipped, so ReadValue can be driven in a loop that does not pre-strip
// separators. Clean end of input returns io.EOF.
func (rd *Reader) ReadValue() (Value, error) {
	c, err := rd.skipSpace()
	if err != nil {
		return Value{}, err
	}

	if c == ']' || c == '}' {
		return Value{}, nil
	}
	if c == ',' {
		c, err = rd.skipSpace()
		if err != nil {
			return Value{}, rd.unexpectedEOF("value")
		}
		if c == ']' || c == '}' {
			return Value{}, nil
		}
	}

	switch c {
	case '[':
		return rd.readArray()
	case '{':
		doc, err := rd.readMembers()
		if err != nil {
			return Value{}, err
		}
		return Object(doc), nil
	case '"', '\'':
		s, err := rd.readString(c)
		if err != nil {
			return Value{}, err
		}
		return String(s), nil
	case 'f':
		if err := rd.expectLiteral("alse", "false"); err != nil {
			return Value{}, err
		}
		return Bool(false), nil
	case 't':
		if err := rd.expectLiteral("rue", "true"); err != nil {
			return Value{}, err
		}
		return Bool(true), nil
	case 'n':
		if err := rd.expectLiteral("ull", "null"); err != nil {
			return Value{}, err
		}
		return Null(), nil
	default:
		rd.unreadRune()
		return rd.readNumber()
	}
}

// ReadDocument reads an object, i.e. '{' followed by "key":value pairs
// separated by commas and terminated by '}'. Duplicate keys are
// last-write-wins.
func (rd *Reader) ReadDocument() (Document, error) {
	c, err := rd.skipSpace()
	if err != nil {
		return nil, err
	}
	if c != '{' {
		return nil, rd.errFound("'{'", c)
	}
	return rd.readMembers()
}

// readArray parses elements after a consumed '['. The loop relies on
// ReadValue's sentinel: the first Undefined result is the matching ']'.
func (rd *Reader) readArray() (Value, error) {
	elems := []Value{}
	for {
		v, err := rd.ReadValue()
		if err != nil {
			if err == io.EOF {
				return Value{}, rd.unexpectedEOF("']'")
			}
			return Value{}, err
		}
		if !v.IsDefined() {
			return Array(elems), nil
		}
		elems = append(elems, v)
	}
}

// readMembers parses pairs after a consumed '{'.
func (rd *Reader) readMembers() (Document, error) {
	doc := Document{}
	for {
		c, err := rd.skipSpace()
		if err != nil {
			return nil, rd.unexpectedEOF("'}'")
		}
		if c == '}' {
			return doc, nil
		}
		if c == ',' {
			c, err = rd.skipSpace()
			if err != nil {
				return nil, rd.unexpectedEOF("'}'")
			}
			if c == '}' {
				return doc, nil
			}
		}
		if c != '"' && c != '\'' {
			return nil, rd.errFound("quoted key", c)
		}

		key, err := rd.readString(c)
		if err != nil {
			return nil, err
		}

		c, err = rd.skipSpace()
		if err != nil {
			return nil, rd.unexpectedEOF("':'")
		}
		if c != ':' {
			return nil, rd.errFound("':'", c)
		}

		val, err := rd.ReadValue()
		if err != nil {
			if err == io.EOF {
				return nil, rd.unexpectedEOF("value")
			}
			return nil, err
		}
		if !val.IsDefined() {
			// ReadValue consumed a terminator where a member value was
			// required, e.g. {"a":}.
			return nil, &ParseError{Offset: rd.off, Expected: "value"}
		}
		doc[key] = val
	}
}

// readString scans to the closing quote. Backslash escape sequences are NOT
// processed; the quote character cannot appear inside a string. This is the
// format's contract, paired with the writer.
func (rd *Reader) readString(quote rune) (string, error) {
	var sb strings.Builder
	for {
		c, err := rd.readRune()
		if err != nil {
			return "", rd.unexpectedEOF("closing quote")
		}
		if c == quote {
			return sb.String(), nil
		}
		sb.WriteRune(c)
	}
}

// expectLiteral consumes the remainder of a keyword one rune at a time.
func (rd *Reader) expectLiteral(rest, literal string) error {
	for _, want := range rest {
		c, err := rd.readRune()
		if err != nil {
			return rd.unexpectedEOF("literal " + strconv.Quote(literal))
		}
		if c != want {
			return rd.errFound("literal "+strconv.Quote(literal), c)
		}
	}
	return nil
}

// readNumber scans a numeric token and parses it as a float64.
func (rd *Reader) readNumber() (Value, error) {
	start := rd.off
	var sb strings.Builder
	for {
		c, err := rd.readRune()
		if err != nil {
			break
		}
		if !strings.ContainsRune(numberRunes, c) {
			rd.unreadRune()
			break
		}
		sb.WriteRune(c)
	}

	token := sb.String()
	if token == "" {
		c, err := rd.readRune()
		if err != nil {
			return Value{}, rd.unexpectedEOF("value")
		}
		return Value{}, &ParseError{Offset: start, Expected: "value", Found: string(c)}
	}

	f, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return Value{}, &ParseError{Offset: start, Expected: "number", Found: token, cause: err}
	}
	return Number(f), nil
}

// skipSpace returns the next significant rune.
func (rd *Reader) skipSpace() (rune, error) {
	for {
		c, err := rd.readRune()
		if err != nil {
			return 0, err
		}
		if !unicode.IsSpace(c) {
			return c, nil
		}
	}
}

func (rd *Reader) readRune() (rune, error) {
	c, size, err := rd.r.ReadRune()
	if err != nil {
		return 0, err
	}
	rd.off += int64(size)
	rd.last = size
	return c, nil
}

func (rd *Reader) unreadRune() {
	if err := rd.r.UnreadRune(); err == nil {
		rd.off -= int64(rd.last)
	}
}

// errFound reports the most recently read rune as unexpected.
func (rd *Reader) errFound(expected string, found rune) *ParseError {
	return &ParseError{
		Offset:   rd.off - int64(rd.last),
		Expected: expected,
		Found:    string(found),
	}
}

func (rd *Reader) unexpectedEOF(expected string) *ParseError {
	return &ParseError{Offset: rd.off, Expected: expected, cause: io.ErrUnexpectedEOF}
}
