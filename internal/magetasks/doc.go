// Package magetasks provides the build, test and lint tasks behind the
// Magefile, grouped so each mage namespace stays a one-line wrapper.
package magetasks
