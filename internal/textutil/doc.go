// Package textutil provides small text normalization helpers shared by the
// converter and the CLI.
package textutil
