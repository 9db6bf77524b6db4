package render

// NodeType discriminates the node kinds of the rendering tree returned to the
// host UI.
type NodeType string

const (
	TypePanel    NodeType = "panel"
	TypeHeading  NodeType = "heading"
	TypeText     NodeType = "text"
	TypeDivider  NodeType = "divider"
	TypeCopyable NodeType = "copyable"
)

// Node is a single element of the rendering tree. Leaf nodes carry a value,
// panels carry children.
type Node struct {
	Type     NodeType `json:"type"`
	Value    string   `json:"value,omitempty"`
	Children []Node   `json:"children,omitempty"`
}

func Panel(children ...Node) Node {
	return Node{Type: TypePanel, Children: children}
}

func Heading(value string) Node {
	return Node{Type: TypeHeading, Value: value}
}

func Text(value string) Node {
	return Node{Type: TypeText, Value: value}
}

func Divider() Node {
	return Node{Type: TypeDivider}
}

func Copyable(value string) Node {
	return Node{Type: TypeCopyable, Value: value}
}
