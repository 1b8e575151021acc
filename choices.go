package layerconf

import "fmt"

// Pair couples an accepted value with a human-readable label, in the
// style of enumerated model choices
type Pair struct {
	Value any
	Label string
}

// choicesOptions carries the Choices caster configuration
type choicesOptions struct {
	flat  []any
	cast  Caster
	pairs []Pair
}

// ChoicesOption configures a Choices caster
type ChoicesOption func(*choicesOptions)

// ChoicesFlat adds values to the accepted set
func ChoicesFlat(values ...any) ChoicesOption {
	return func(o *choicesOptions) { o.flat = append(o.flat, values...) }
}

// ChoicesCast sets the conversion applied before validation. The
// default leaves the value as-is
func ChoicesCast(c Caster) ChoicesOption {
	return func(o *choicesOptions) { o.cast = c }
}

// ChoicesPairs adds (value, label) pairs whose values are accepted
func ChoicesPairs(pairs ...Pair) ChoicesOption {
	return func(o *choicesOptions) { o.pairs = append(o.pairs, pairs...) }
}

// Choices returns a Caster that converts the resolved value and then
// requires it to be one of the accepted values. The rejection error
// names the offending value and the full accepted set
func Choices(opts ...ChoicesOption) Caster {
	o := choicesOptions{cast: Identity}
	for _, opt := range opts {
		opt(&o)
	}

	valid := make([]any, 0, len(o.flat)+len(o.pairs))
	valid = append(valid, o.flat...)
	for _, p := range o.pairs {
		valid = append(valid, p.Value)
	}

	return CastFunc(func(v any) (any, error) {
		cast, err := o.cast.apply(v)
		if err != nil {
			return nil, err
		}
		for _, w := range valid {
			if w == cast {
				return cast, nil
			}
		}
		return nil, fmt.Errorf("value not in list: %v; valid values are %v", v, valid)
	})
}
