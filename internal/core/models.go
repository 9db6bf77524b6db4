package core

type AuthMessage struct {
	Username string
	Password string
}

// TransactionPayload carries the raw transaction fields submitted for
// simulation. Gas and Value are hex quantity strings as received on the wire.
type TransactionPayload struct {
	From  string
	To    string
	Data  string
	Gas   string
	Value string
}
