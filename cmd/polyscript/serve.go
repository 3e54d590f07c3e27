/*
File    : polyscript/cmd/polyscript/serve.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"fmt"
	"net"

	"github.com/fatih/color"

	"github.com/akashmaji946/polyscript/repl"
)

var infoColor = color.New(color.FgCyan)

// serve listens on port and hands each accepted connection its own REPL
// session, reusing the connection as both the session's reader and writer.
func serve(port string) error {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return fmt.Errorf("could not listen on port %s: %w", port, err)
	}
	defer listener.Close()
	infoColor.Printf("polyscript REPL server listening on :%s\n", port)

	for {
		conn, err := listener.Accept()
		if err != nil {
			infoColor.Printf("accept failed: %v\n", err)
			continue
		}
		go handleConn(conn)
	}
}

func handleConn(conn net.Conn) {
	defer conn.Close()
	infoColor.Printf("client connected from %s\n", conn.RemoteAddr())
	repl.NewRepl().Start(conn, conn)
	infoColor.Printf("client disconnected from %s\n", conn.RemoteAddr())
}
