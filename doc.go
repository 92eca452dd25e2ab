/*
Package argstore parses a process argument vector into an immutable key/value store with typed accessors.

	s := argstore.FromOS()
	datadir := s.String("-datadir", "/var/lib/node")
	port := s.Int("-port", 8333)
	verbose := s.Bool("-verbose", false)

Every -key[=value] or --key[=value] token is stored under "-key", so callers always look keys up with a single
leading dash. A token without "=" is present with an empty value: String returns "", Int returns 0 and Bool returns
true, the default is used only for keys that were not given at all.

A -nokey[=value] token sets "-key" to the boolean inversion of its value ("1" for "0", "0" for anything else).
An explicit -key token always wins over -nokey tokens regardless of their order, otherwise the last occurrence wins.

Malformed values never produce errors: Int reads a leading decimal number and yields 0 when there is none.

The Load function fills a structure from the store according to the `arg` meta tags of its fields:

	type Params struct {
		Datadir string `arg:"-datadir||required"`
		Port    int    `arg:"-port|8333"`
		Verbose bool   `arg:"-verbose"`
	}

The store does not declare flags, print help or reject unknown keys.
*/
package argstore
