// Package preview loads YAML scenario documents describing Input renders and
// turns them into standalone HTML pages for visual review.
package preview
