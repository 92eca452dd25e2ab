/*
This program shows the params structure which implements the Extender interface for validation and modification
of the loaded arguments as well as the fields without an associated argument.

The admin user runs with admin privileges unless -noadmin is given, an explicit -admin always wins over -noadmin.
*/

package main

import (
	"errors"
	"strings"

	"github.com/matusvla/argstore"
	"github.com/matusvla/argstore/example"
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

func main() {
	s := argstore.FromOS()
	logger := example.NewLogger(s, "extension")

	var p params
	if err := argstore.Load(s, &p); err != nil {
		logger.Fatal("error while loading the cli arguments", "err", err)
	}

	// The program "logic"
	priviledgesClause := "without admin priviledges"
	if p.isAdmin {
		priviledgesClause = "with admin priviledges"
	}
	logger.Infof("Running the program as a user %q %s", p.Username, priviledgesClause)
}
