// Command notesctl is the operator tool for the notes service: it mints
// development tokens and prepares storage backends.
//
//	notesctl token --subject u1 --ttl 1h
//	notesctl migrate
//	notesctl dynamo create-table
//	notesctl version
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
