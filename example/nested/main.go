/*
This example shows how you can group the CLI arguments using the substructures
*/

package main

import (
	"fmt"

	"github.com/matusvla/argstore"
	"github.com/matusvla/argstore/example"
)

type userAuth struct {
	Username string `arg:"user||required"`
	Password string `arg:"pass"`
}

type serverInfo struct {
	Host string `arg:"a|127.0.0.1"`
	Port int    `arg:"p|80"`
	TLS  bool   `arg:"tls|true"`
}

type params struct {
	Version    example.BuildVersionFlag
	UserAuth   userAuth
	ServerInfo serverInfo
}

func main() {
	s := argstore.FromOS()
	logger := example.NewLogger(s, "nested")

	// Argument loading and validation
	var p params
	if err := argstore.Load(s, &p); err != nil {
		logger.Fatal("error while loading the cli arguments", "err", err)
	}

	// The program "logic"
	scheme := "https"
	if !p.ServerInfo.TLS { // -notls
		scheme = "http"
	}
	logger.Info("connecting", "url", fmt.Sprintf("%s://%s:%d", scheme, p.ServerInfo.Host, p.ServerInfo.Port), "user", p.UserAuth.Username)
}
