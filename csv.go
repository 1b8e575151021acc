package layerconf

import (
	"fmt"
	"strings"
)

// csvOptions carries the Csv caster configuration
type csvOptions struct {
	cast      Caster
	delimiter string
	strip     string
	post      func([]any) (any, error)
}

// CsvOption configures a Csv caster
type CsvOption func(*csvOptions)

// CsvCast sets the per-token caster applied after stripping. The
// default leaves tokens as strings
func CsvCast(c Caster) CsvOption {
	return func(o *csvOptions) { o.cast = c }
}

// CsvDelimiter sets the characters that separate tokens. The default
// is ","
func CsvDelimiter(d string) CsvOption {
	return func(o *csvOptions) { o.delimiter = d }
}

// CsvStrip sets the cutset trimmed from both ends of each token. The
// default is ASCII whitespace
func CsvStrip(cutset string) CsvOption {
	return func(o *csvOptions) { o.strip = cutset }
}

// CsvPostProcess sets a final transform over the cast tokens. The
// default returns them as a []any in input order
func CsvPostProcess(fn func([]any) (any, error)) CsvOption {
	return func(o *csvOptions) { o.post = fn }
}

// Csv returns a Caster that splits a delimited string into a slice of
// cast tokens. Tokenization follows POSIX shell quoting: quoted spans
// (single or double) are literal and not split, and backslash escapes
// the next character
func Csv(opts ...CsvOption) Caster {
	o := csvOptions{
		cast:      Identity,
		delimiter: ",",
		strip:     " \t\n\r\v\f",
	}
	for _, opt := range opts {
		opt(&o)
	}

	return CastFunc(func(v any) (any, error) {
		raw, ok := v.(string)
		if !ok {
			raw = fmt.Sprint(v)
		}
		tokens, err := splitPosix(raw, o.delimiter)
		if err != nil {
			return nil, err
		}
		out := make([]any, 0, len(tokens))
		for _, tok := range tokens {
			cast, err := o.cast.apply(strings.Trim(tok, o.strip))
			if err != nil {
				return nil, err
			}
			out = append(out, cast)
		}
		if o.post != nil {
			return o.post(out)
		}
		return out, nil
	})
}

// splitPosix tokenizes value like a POSIX shell lexer configured to
// split only on the given separator characters: single-quoted spans
// are literal, double-quoted spans honor backslash escapes for '"' and
// '\', and a bare backslash escapes the next character. Empty tokens
// survive only when explicitly quoted
func splitPosix(value, separators string) ([]string, error) {
	var (
		tokens []string
		b      strings.Builder
		have   bool
	)
	flush := func() {
		if have {
			tokens = append(tokens, b.String())
			b.Reset()
			have = false
		}
	}

	for i := 0; i < len(value); i++ {
		c := value[i]
		switch {
		case strings.IndexByte(separators, c) >= 0:
			flush()
		case c == '\\':
			if i+1 >= len(value) {
				return nil, fmt.Errorf("no escaped character in %q", value)
			}
			i++
			b.WriteByte(value[i])
			have = true
		case c == '\'':
			end := strings.IndexByte(value[i+1:], '\'')
			if end < 0 {
				return nil, fmt.Errorf("no closing quotation in %q", value)
			}
			b.WriteString(value[i+1 : i+1+end])
			have = true
			i += end + 1
		case c == '"':
			i++
			for {
				if i >= len(value) {
					return nil, fmt.Errorf("no closing quotation in %q", value)
				}
				if value[i] == '"' {
					break
				}
				if value[i] == '\\' && i+1 < len(value) && (value[i+1] == '"' || value[i+1] == '\\') {
					i++
				}
				b.WriteByte(value[i])
				i++
			}
			have = true
		default:
			b.WriteByte(c)
			have = true
		}
	}
	flush()
	return tokens, nil
}
