package theme

import "fmt"

// Kind identifies one renderable component variant. The set is closed:
// the spacing rule table and the render dispatch both switch over it.
type Kind int

const (
	KindHeader Kind = iota
	KindSection
	KindText
	KindTable
	KindCode
	KindSummary
	KindProgress
	KindPromptEcho
)

const kindCount = int(KindPromptEcho) + 1

// Kinds returns every component kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for i := 0; i < kindCount; i++ {
		kinds = append(kinds, Kind(i))
	}
	return kinds
}

// String returns the configuration name of the kind.
func (k Kind) String() string {
	switch k {
	case KindHeader:
		return "header"
	case KindSection:
		return "section"
	case KindText:
		return "text"
	case KindTable:
		return "table"
	case KindCode:
		return "code"
	case KindSummary:
		return "summary"
	case KindProgress:
		return "progress"
	case KindPromptEcho:
		return "prompt"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind maps a configuration name back to its Kind.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds() {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown component kind %q", name)
}
