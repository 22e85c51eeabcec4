// Package template defines the template rendering seam used by preview pages,
// with a pongo2-backed implementation in the gotemplate subpackage.
package template
