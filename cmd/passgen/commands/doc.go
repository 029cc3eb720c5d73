// Package commands defines the passgen CLI and wires dependencies for subcommands.
//
// Commands
//
//   - shell       Interactive menu (default when no subcommand is given)
//   - generate    Print one or more passwords from a preset or custom classes
//   - transform   Show a password with its hashed, salted and reversed forms
//   - verify      Check a password against an Argon2id PHC string
//   - charsets    List the character classes and the excluded symbols
//
// # Implementation
//
// The root command loads configuration (.env file plus PASSGEN_* variables),
// builds the zap logger and the generator service before any subcommand runs.
// Passwords go to stdout, logs to stderr.
package commands
