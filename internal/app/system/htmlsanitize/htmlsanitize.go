// Package htmlsanitize strips dangerous markup from user-generated text.
//
// Contact messages and testimonials come straight from the public site,
// so anything a guest types is sanitized before it is stored and later
// rendered in the admin dashboard or on the site itself.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

var policy = bluemonday.UGCPolicy()

// Sanitize returns s with scripts, event handlers, and other unsafe
// markup removed. Basic formatting tags survive; plain text passes
// through unchanged.
func Sanitize(s string) string {
	return policy.Sanitize(s)
}
