// Package cli is the interactive terminal front end. It reads commands from
// stdin, drives the page controllers in internal/client/views and prints
// their state.
//
// Typical session:
//
//	sikho [vocab]> dash
//	sikho [vocab]> use notes
//	sikho [notes]> use vocab
//	sikho [vocab]> add
//	sikho [vocab]> search bench
//	sikho [vocab]> share 3f2c
package cli
