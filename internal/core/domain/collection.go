package domain

// DefaultOwnerID is the owner assigned to every new collection. Collections are
// not yet bound to an authenticated user.
const DefaultOwnerID int64 = 1

type Collection struct {
	ID      int64
	OwnerID int64
	Name    string
}
