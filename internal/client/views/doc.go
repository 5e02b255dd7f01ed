// Package views holds the page controllers of the client: the state behind
// each screen (filters, sort order, the add/edit form, open dialogs) and the
// actions a user can take on it. Controllers never talk to the store
// directly; they go through collections and derive what is shown with the
// engine package.
package views
