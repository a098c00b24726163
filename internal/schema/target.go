package schema

import "fmt"

// TargetKind names the entity a polymorphic (target_id, target_type) pair points at.
// The store cannot enforce these references; callers resolve them through Table.
type TargetKind string

const (
	TargetUser               TargetKind = "user"
	TargetCommunityAlert     TargetKind = "community_alert"
	TargetAlertComment       TargetKind = "alert_comment"
	TargetHelpRequest        TargetKind = "help_request"
	TargetHelpResponse       TargetKind = "help_response"
	TargetEducationalContent TargetKind = "educational_content"
	TargetParentingAdvice    TargetKind = "parenting_advice"
	TargetAdviceComment      TargetKind = "advice_comment"
	TargetMessage            TargetKind = "message"
	TargetConversation       TargetKind = "conversation"
)

var targetTables = map[TargetKind]string{
	TargetUser:               "users",
	TargetCommunityAlert:     "community_alerts",
	TargetAlertComment:       "alert_comments",
	TargetHelpRequest:        "help_requests",
	TargetHelpResponse:       "help_responses",
	TargetEducationalContent: "educational_content",
	TargetParentingAdvice:    "parenting_advice",
	TargetAdviceComment:      "advice_comments",
	TargetMessage:            "messages",
	TargetConversation:       "conversations",
}

// ParseTargetKind validates a target_type column value.
func ParseTargetKind(s string) (TargetKind, error) {
	k := TargetKind(s)
	if !k.Valid() {
		return "", fmt.Errorf("unknown target type %q", s)
	}
	return k, nil
}

// Valid reports whether k is a known target kind.
func (k TargetKind) Valid() bool {
	_, ok := targetTables[k]
	return ok
}

// Table returns the table rows of this kind live in, or "" for unknown kinds.
func (k TargetKind) Table() string {
	return targetTables[k]
}

// CanonicalPair orders two user ids so that the smaller comes first.
// Connections are stored canonicalized so (a, b) and (b, a) are one row.
func CanonicalPair(a, b int64) (int64, int64) {
	if b < a {
		return b, a
	}
	return a, b
}
