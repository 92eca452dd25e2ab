package argstore

import (
	"math"
	"os"
	"sort"
	"strings"
)

const (
	keyPrefix      = "-"
	negationPrefix = "no"

	falseValue = "0"
	trueValue  = "1"
)

// Store is an immutable lookup table built from a process argument vector.
// A nil *Store behaves like a store built from an empty argument vector.
type Store struct {
	positive map[string]string
	negated  map[string]string
}

// FromOS builds a Store from os.Args.
func FromOS() *Store {
	return Parse(os.Args)
}

// Parse builds a Store from an argv-shaped slice. The first element is the program name and is skipped.
//
// Every token of the form -key[=value] or --key[=value] is stored under "-key". A token without "=" is stored
// with an empty value. A token whose key starts with "no" (e.g. -noverbose) is stored as the inverted boolean of
// its value under the key without the prefix ("-verbose"), and any explicit -verbose token wins over it regardless
// of the order. Tokens that do not start with a dash are ignored.
func Parse(args []string) *Store {
	s := &Store{
		positive: make(map[string]string),
		negated:  make(map[string]string),
	}
	if len(args) < 2 {
		return s
	}
	for _, token := range args[1:] { // first argument is a command name - we skip it
		if !strings.HasPrefix(token, keyPrefix) {
			continue
		}
		name, value, _ := strings.Cut(token, "=")
		name = normalizeKey(name)
		if base, ok := strings.CutPrefix(name[1:], negationPrefix); ok {
			s.negated[keyPrefix+base] = invert(value)
			continue
		}
		s.positive[name] = value
	}
	return s
}

// normalizeKey returns the key with a single leading dash, --key is the same as -key.
func normalizeKey(name string) string {
	if !strings.HasPrefix(name, keyPrefix) {
		return keyPrefix + name
	}
	if strings.HasPrefix(name, keyPrefix+keyPrefix) {
		return name[1:]
	}
	return name
}

func invert(raw string) string {
	if raw == falseValue {
		return trueValue
	}
	return falseValue
}

func (s *Store) lookup(key string) (string, bool) {
	if s == nil {
		return "", false
	}
	if v, ok := s.positive[key]; ok {
		return v, true
	}
	v, ok := s.negated[key]
	return v, ok
}

// Has reports whether the key was given on the command line, either directly or negated.
func (s *Store) Has(key string) bool {
	_, ok := s.lookup(key)
	return ok
}

// String returns the value of the key, or def if the key is absent.
// A key passed without a value (e.g. -name) yields the empty string, not def.
func (s *Store) String(key, def string) string {
	if v, ok := s.lookup(key); ok {
		return v
	}
	return def
}

// Int returns the numeric value of the key, or def if the key is absent.
// The value is read the way atoi does: a malformed value of a present key yields 0.
func (s *Store) Int(key string, def int64) int64 {
	if v, ok := s.lookup(key); ok {
		return atoi(v)
	}
	return def
}

// Bool returns the boolean value of the key, or def if the key is absent.
// Any value other than "0" is true, including the empty one.
func (s *Store) Bool(key string, def bool) bool {
	if v, ok := s.lookup(key); ok {
		return v != falseValue
	}
	return def
}

// Keys returns the sorted list of all the keys present in the store.
func (s *Store) Keys() []string {
	if s == nil {
		return nil
	}
	keys := make([]string, 0, len(s.positive)+len(s.negated))
	for k := range s.positive {
		keys = append(keys, k)
	}
	for k := range s.negated {
		if _, ok := s.positive[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of keys present in the store.
func (s *Store) Len() int {
	return len(s.Keys())
}

// atoi parses an optional sign followed by decimal digits, stopping at the first non-digit.
// Leading whitespace is skipped, input without digits yields 0 and out of range values saturate.
func atoi(str string) int64 {
	str = strings.TrimLeft(str, " \t\n\v\f\r")
	neg := false
	if str != "" && (str[0] == '+' || str[0] == '-') {
		neg = str[0] == '-'
		str = str[1:]
	}
	var n uint64
	limit := uint64(math.MaxInt64)
	if neg {
		limit++
	}
	for i := 0; i < len(str); i++ {
		c := str[i]
		if c < '0' || c > '9' {
			break
		}
		d := uint64(c - '0')
		if n > (limit-d)/10 {
			n = limit
			break
		}
		n = n*10 + d
	}
	if neg {
		if n > math.MaxInt64 {
			return math.MinInt64
		}
		return -int64(n)
	}
	return int64(n)
}
