// Package repository detects project roots, filters their source trees and
// loads dependency metadata into packages the tagging pipeline consumes.
package repository

// Project describes a detected project root.
type Project struct {
	RootPath string // absolute path to the project root directory
	Type     string // project type (go, javascript, java)
	Name     string // name extracted from the project's config file
}
