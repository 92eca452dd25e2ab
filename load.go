package argstore

import (
	"fmt"
	"reflect"
)

const (
	tagName       = "arg"
	requiredValue = "required"
)

// Extender is an interface that can be implemented by the type passed to the Load function or by any of its
// nested structures. It can be used for the additional validation or modification of the loaded values.
type Extender interface {
	Extend() error
}

// ParseAndLoad parses os.Args and fills the structure pointed to by params. See Load.
func ParseAndLoad(params interface{}) error {
	return Load(FromOS(), params)
}

/*
Load takes a pointer to a structure and fills it from the store according to the `arg` meta tags
defined on the level of structure's fields.

Example of the input structure:
	type Params struct {
		Datadir string        `arg:"-datadir||required"`
		Verbose bool          `arg:"-verbose|true"`
		Port    int           `arg:"-port|8333"`
		MaxMem  int64         `arg:"maxmem|300"`
		Timeout time.Duration `arg:"-timeout|5s"`
	}

The value of the `arg` metadata consists of three parts separated by the '|' character. Only the first one is mandatory.
The first value is the key looked up in the store. It is normalized like a command line token: the leading
dash may be omitted and --name is the same as -name.
The second value is the default used when the key is absent from the command line.
The third value marks the key as required. If this is specified, the default value is ignored.

Values are read with the Store accessors, so -noverbose clears Verbose and a malformed -port=x sets Port to 0.
Supported field types are string, bool, int, int64, uint, uint64, float64 and time.Duration. Unsigned, float
and duration values are parsed strictly and a malformed value of a present key is loaded as 0 as well.
Fields without the `arg` tag and unexported fields are left untouched, nested structures are walked recursively.

If the Params type or any of its nested structures implements the Extender interface then its Extend method
will be called at the end of the setup, the nested ones first.

In case of an error the passed structure is set to its zero value and the error is returned.
*/
func Load(s *Store, params interface{}) (retErr error) {
	rv := reflect.ValueOf(params)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return &InvalidParamsError{reflect.TypeOf(params)}
	}

	defer func() {
		if retErr != nil {
			pEl := rv.Elem()
			pEl.Set(reflect.Zero(pEl.Type()))
		}
	}()

	lb := newLoadBuilder()
	if err := lb.setUpFields(rv); err != nil {
		return err
	}
	lb.apply(s)

	if err := lb.validate(s); err != nil {
		return err
	}
	return lb.runExtensionFunctions()
}

// runExtensionFunctions runs all the extension functions found during the field collection, the innermost first
func (lb *loadBuilder) runExtensionFunctions() error {
	for _, extFn := range lb.extFns {
		if err := extFn(); err != nil {
			return fmt.Errorf("running argument extensions failed, %w", err)
		}
	}
	return nil
}

// InvalidParamsError is an error returned in case that the provided params is not a pointer to a structure.
type InvalidParamsError struct {
	Type reflect.Type
}

func (e *InvalidParamsError) Error() string {
	const outputFmt = "argument load: got %s"
	if e.Type == nil {
		return fmt.Sprintf(outputFmt, "<nil>")
	}

	if e.Type.Kind() != reflect.Ptr {
		return fmt.Sprintf(outputFmt, "non-pointer "+e.Type.String())
	}
	return fmt.Sprintf(outputFmt, e.Type.String())
}
