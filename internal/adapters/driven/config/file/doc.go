// Package file provides file-based implementations of the configuration
// and prompt store ports.
//
// Settings are persisted as TOML at ~/.medrag/config.toml with restricted
// permissions; the file may carry an API key. Prompt templates live as
// user-editable text files under ~/.medrag/prompts/ and fall back to the
// embedded defaults when absent.
package file
