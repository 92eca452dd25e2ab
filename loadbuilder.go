package argstore

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

type loadBuilder struct {
	fields   []fieldBinding
	required []string // keys of required fields to be able to check if they have been passed
	extFns   []func() error
}

func newLoadBuilder() *loadBuilder {
	return &loadBuilder{}
}

// setUpFields collects the bindings of all tagged fields of the structure pointed to by rv
func (lb *loadBuilder) setUpFields(rv reflect.Value) error {
	v := rv.Elem()
	t := v.Type()

	numFields := v.NumField()
	for i := 0; i < numFields; i++ {
		fld := v.Field(i)
		fldT := t.Field(i)
		if !fldT.IsExported() {
			continue
		}

		argMetadata, tagged := fldT.Tag.Lookup(tagName)
		if !tagged {
			if fld.Kind() == reflect.Struct {
				if err := lb.setUpFields(fld.Addr()); err != nil {
					return err
				}
			}
			continue
		}

		var (
			fb  fieldBinding
			err error
		)
		switch tpe := fld.Interface().(type) {
		case string:
			fb, err = parseFieldBinding(fld, argMetadata, func(s string) (string, error) { return s, nil }, (*Store).String)

		case bool:
			fb, err = parseFieldBinding(fld, argMetadata, strconv.ParseBool, (*Store).Bool)

		case int:
			fb, err = parseFieldBinding(fld, argMetadata, strconv.Atoi, func(s *Store, key string, def int) int {
				return clampInt(s.Int(key, int64(def)))
			})

		case int64:
			fb, err = parseFieldBinding(fld, argMetadata, parseInt64, (*Store).Int)

		case uint:
			fb, err = parseFieldBinding(fld, argMetadata, parseUint, readParsed(parseUint))

		case uint64:
			fb, err = parseFieldBinding(fld, argMetadata, parseUint64, readParsed(parseUint64))

		case float64:
			fb, err = parseFieldBinding(fld, argMetadata, parseFloat64, readParsed(parseFloat64))

		case time.Duration:
			fb, err = parseFieldBinding(fld, argMetadata, time.ParseDuration, readParsed(time.ParseDuration))

		default:
			return fmt.Errorf("unsupported type %T of the field %q", tpe, fldT.Name)
		}
		if err != nil {
			return fmt.Errorf("invalid %q tag of the field %q: %w", tagName, fldT.Name, err)
		}
		lb.addFieldBinding(fb)
	}
	if e, ok := rv.Interface().(Extender); ok {
		lb.extFns = append(lb.extFns, e.Extend)
	}
	return nil
}

func (lb *loadBuilder) addFieldBinding(fb fieldBinding) {
	lb.fields = append(lb.fields, fb)
	if fb.meta().required {
		lb.required = append(lb.required, fb.meta().key)
	}
}

func (lb *loadBuilder) apply(s *Store) {
	for _, fb := range lb.fields {
		fb.apply(s)
	}
}

func (lb *loadBuilder) validate(s *Store) error {
	var missing []string
	for _, key := range lb.required {
		if !s.Has(key) {
			missing = append(missing, key)
		}
	}
	switch len(missing) {
	case 0:
		return nil
	case 1:
		return fmt.Errorf("missing required argument %q", missing[0])
	default:
		return fmt.Errorf("missing required arguments %q", strings.Join(missing, ", "))
	}
}

// readParsed returns a getter parsing the string value of a present key, a malformed value yields the zero value
func readParsed[T any](tParser func(string) (T, error)) func(s *Store, key string, def T) T {
	return func(s *Store, key string, def T) T {
		if !s.Has(key) {
			return def
		}
		v, err := tParser(s.String(key, ""))
		if err != nil {
			var zero T
			return zero
		}
		return v
	}
}

func parseInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func parseUint(s string) (uint, error) {
	result, err := strconv.ParseUint(s, 10, strconv.IntSize)
	return uint(result), err
}

func parseUint64(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}

func parseFloat64(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func clampInt(v int64) int {
	switch {
	case v > math.MaxInt:
		return math.MaxInt
	case v < math.MinInt:
		return math.MinInt
	}
	return int(v)
}

type fieldBinding interface {
	meta() *fieldMeta
	apply(s *Store)
}

type fieldMeta struct {
	key      string
	required bool
}

func (fm *fieldMeta) meta() *fieldMeta {
	return fm
}

type fieldBindingInstance[T any] struct {
	*fieldMeta
	addr       *T
	defaultVal T
	get        func(s *Store, key string, def T) T
}

func (fbi *fieldBindingInstance[T]) apply(s *Store) {
	*fbi.addr = fbi.get(s, fbi.key, fbi.defaultVal)
}

func parseFieldBinding[T any](
	fld reflect.Value,
	argMetadata string,
	tParser func(string) (T, error),
	get func(s *Store, key string, def T) T,
) (*fieldBindingInstance[T], error) {
	meta, argDefault := parseFieldMeta(argMetadata)
	var defaultVal T
	if argDefault != "" {
		var err error
		defaultVal, err = tParser(argDefault)
		if err != nil {
			return nil, err
		}
	}
	return &fieldBindingInstance[T]{
		fieldMeta:  meta,
		addr:       fld.Addr().Interface().(*T),
		defaultVal: defaultVal,
		get:        get,
	}, nil
}

func parseFieldMeta(argMetadata string) (meta *fieldMeta, argDefault string) {
	fp := strings.Split(argMetadata, "|")
	argName := strings.TrimSpace(fp[0])
	var required bool
	if len(fp) > 1 {
		argDefault = strings.TrimSpace(fp[1])
	}
	if len(fp) > 2 {
		if strings.TrimSpace(fp[2]) == requiredValue {
			argDefault = "" // if it is required, we ignore default value
			required = true
		}
	}
	return &fieldMeta{
		key:      normalizeKey(argName),
		required: required,
	}, argDefault
}
