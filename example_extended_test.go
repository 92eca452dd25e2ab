package argstore

import (
	"errors"
	"fmt"
	"log"
	"strings"
)

type params struct {
	Username string `arg:"-u||required"`
	Admin    bool   `arg:"-admin|true"` // -noadmin drops the admin privileges
	isAdmin  bool
}

func (p *params) Extend() error {
	if strings.ContainsAny(p.Username, " \t") {
		return errors.New("username cannot contain whitespaces")
	}
	p.isAdmin = p.Admin && p.Username == "admin"
	return nil
}

// Example_extension demonstrates the usage of params structure implementing the Extender interface.
func Example_extension() {
	for _, cmdLine := range [][]string{
		{"--u=admin"},
		{"--u=admin", "-noadmin"},
		{"-u=admin", "-admin", "-noadmin"},
		{"-u=guest"},
	} {
		var p params
		if err := Load(Parse(append([]string{"executable_name"}, cmdLine...)), &p); err != nil {
			log.Fatalf("error while loading the cli arguments: %s", err.Error())
		}
		fmt.Println(p.Username, p.isAdmin)
	}
	// Output:
	// admin true
	// admin false
	// admin true
	// guest false
}

func ExampleParse() {
	s := Parse([]string{"executable_name", "-noverbose", "--port=18333x", "-label", "positional", "-verbose=0"})

	fmt.Println(s.Bool("-verbose", true))
	fmt.Println(s.Int("-port", 8333))
	fmt.Printf("%q\n", s.String("-label", "default"))
	fmt.Println(s.String("-datadir", "/var/lib/node"))
	fmt.Println(s.Keys())
	// Output:
	// false
	// 18333
	// ""
	// /var/lib/node
	// [-label -port -verbose]
}
