package types

// SessionKind records where a session's owner ID came from: derived from the
// email on the fly (federated) or read from a stored account record (local).
type SessionKind string

const (
	SessionKindFederated SessionKind = "federated"
	SessionKindLocal     SessionKind = "local"
)

// Session is the authenticated identity attached to a request after sign-in.
type Session struct {
	Kind        SessionKind `json:"kind"`
	Email       string      `json:"email"`
	DisplayName string      `json:"displayName"`
	OwnerID     string      `json:"ownerId"`
}
