// Package commands implements the squash CLI: one file per subcommand,
// wired together by Execute.
package commands
