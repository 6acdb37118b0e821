package ideabank

import "embed"

// EmailFS holds the email templates shipped with the binary. Each template
// group is a directory with an html.tmpl and a plaintext.tmpl.
//
//go:embed templates/emails
var EmailFS embed.FS
