package constant

type AccountType string

const (
	AccountTypeSeller AccountType = "seller"
	AccountTypeBuyer  AccountType = "buyer"
)

type ContactType string

const (
	ContactTypePhone   ContactType = "phone"
	ContactTypeAddress ContactType = "address"
)

type contextKey string

// IdentityKey holds the authenticated *model.Identity in a request context.
const IdentityKey contextKey = "identity"
