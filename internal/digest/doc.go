// Package digest provides the content digest used to verify
// decompressed output and the short fingerprint shown in the CLI.
package digest
