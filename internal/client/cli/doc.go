// Package cli provides the interactive AuthMaster command-line client.
//
// It wires configuration, local storage, the account and session services,
// the explanation service and the view controller, then runs a REPL on top
// of them. Every command is forwarded to the controller and the resulting
// screen is rendered; the CLI itself holds no authentication state.
//
// Commands:
//   - guide                 show the authentication guide
//   - login / signup        fill and submit the sign in or registration form
//   - switch                toggle between the two forms
//   - dashboard             open the protected dashboard
//   - explain <n> / close   explain a guide topic, close the explanation
//   - status                show the current authentication state
//   - logout, exit | quit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
