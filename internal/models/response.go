package models

import "strings"

// ReplyResult is the decoded body of a reply request. Both fields are
// optional on the wire.
type ReplyResult struct {
	Reply    string
	HasReply bool // reply was present as a JSON string
	Crisis   bool
}

// Usable reports whether the result carries reply text worth showing
func (r *ReplyResult) Usable() bool {
	if r == nil || !r.HasReply {
		return false
	}
	return strings.TrimSpace(r.Reply) != ""
}
