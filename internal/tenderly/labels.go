package tenderly

import "strings"

// Labeler maps on-chain addresses from a single simulation response to
// human-readable roles and names. It is built fresh per response and must not
// be reused across responses.
type Labeler struct {
	order  []string
	labels map[string]string
}

// NewLabeler seeds the mapping from one response: the sender becomes
// "TxOrigin", every known contract gets its declared name and the recipient is
// suffixed with "TxRecipient", joined to any existing label with a pipe.
func NewLabeler(resp *Response) *Labeler {
	l := &Labeler{
		labels: make(map[string]string),
	}

	if resp == nil || resp.Transaction == nil {
		return l
	}

	l.set(resp.Transaction.From, "TxOrigin")
	for _, contract := range resp.Contracts {
		l.set(contract.Address, contract.ContractName)
	}

	if to := resp.Transaction.To; to != "" {
		label := "TxRecipient"
		if existing, ok := l.labels[strings.ToLower(to)]; ok {
			label = existing + "|TxRecipient"
		}
		l.set(to, label)
	}

	return l
}

// set records a label under the lower-cased address. Re-labelling an address
// keeps its original position in the substitution order.
func (l *Labeler) set(address, label string) {
	key := strings.ToLower(address)
	if _, ok := l.labels[key]; !ok {
		l.order = append(l.order, key)
	}
	l.labels[key] = label
}

// Address returns the label for an address, or the address itself when
// unlabeled. Lookup is case-insensitive.
func (l *Labeler) Address(address string) string {
	if label, ok := l.labels[strings.ToLower(address)]; ok {
		return label
	}
	return address
}

// Substitute lower-cases the input and replaces every known address as a
// literal substring, in insertion order. A later replacement can match inside
// the output of an earlier one when one address is a substring of another;
// that matches the historical behavior and is deliberately left as is.
func (l *Labeler) Substitute(text string) string {
	text = strings.ToLower(text)
	for _, address := range l.order {
		text = strings.ReplaceAll(text, address, l.labels[address])
	}
	return text
}
