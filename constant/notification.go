package constant

type EventType string

const (
	EventNewOrder          EventType = "order.new"
	EventAccountRegistered EventType = "account.registered"
)
