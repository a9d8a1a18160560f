// Package cli provides the interactive user-management command-line client.
//
// It wires configuration, the REST repository client, and the controllers
// into an interactive shell. The shell renders the list controller's state as
// a table, forwards user commands into controller operations, and runs the
// prompt-based form flow for create and edit.
//
// Commands:
//   - help            — show available commands
//   - list | l        — reload and print the user table
//   - add             — create a user through the form flow
//   - edit <id>       — edit a user through the form flow
//   - delete <id>     — delete a user (asks for confirmation)
//   - exit | quit     — leave the program
//
// The shell is started via App.Run(ctx), which blocks until the user exits.
package cli
