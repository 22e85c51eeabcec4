// Package input renders the labeled text input used across forms.
//
// Render returns an HTML node tree rooted at a container <div> holding, in
// order, an optional <label>, the <input> and an optional error <p>. The tree
// is a plain golang.org/x/net/html structure, so callers can inspect or adjust
// it before serializing it with Write. A Ref supplied through Props receives an
// Element handle onto the <input> node (never the container).
//
// Supported native attributes are enumerated on Attributes and Handlers; any
// other attribute travels through Props.Extra. None of them are validated.
package input
