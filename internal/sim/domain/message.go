package domain

// MessageCategory groups inbox messages for presentation.
type MessageCategory int

// Closed set of message categories.
const (
	MessageGeneral MessageCategory = iota
	MessageInjury
	MessageDiscipline
	MessageTransfer
	MessageDiscovery
	MessageKnowledge
	MessageSeason
)

func (c MessageCategory) String() string {
	switch c {
	case MessageGeneral:
		return "general"
	case MessageInjury:
		return "injury"
	case MessageDiscipline:
		return "discipline"
	case MessageTransfer:
		return "transfer"
	case MessageDiscovery:
		return "discovery"
	case MessageKnowledge:
		return "knowledge"
	case MessageSeason:
		return "season"
	default:
		return "unknown"
	}
}

// Message is one append-only inbox entry.
type Message struct {
	Week     int
	Season   int
	Category MessageCategory
	Subject  string
	Body     string
}
