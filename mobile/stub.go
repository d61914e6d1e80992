//go:build !mobile

// Package mobile is the ebitenmobile binding entry point; the real code
// builds only with the mobile tag.
package mobile

// Dummy makes the package visible to ebitenmobile.
func Dummy() {}
