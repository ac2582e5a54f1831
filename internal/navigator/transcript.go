package navigator

// Button is one tappable chip attached to an assistant reply. Action is the
// token dispatched back through HandleButton when the chip is pressed.
type Button struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Action   string `json:"action"`
	Variant  string `json:"variant"`
	LinkType string `json:"linkType"`
}

// Reply is one assistant turn: a message plus optional chips and surface
// flags telling the client which auxiliary panel to show.
type Reply struct {
	Message   string   `json:"message"`
	Buttons   []Button `json:"buttons,omitempty"`
	Portfolio bool     `json:"portfolio,omitempty"`
	Work      bool     `json:"work,omitempty"`
	Contact   bool     `json:"contact,omitempty"`
	Resume    bool     `json:"resume,omitempty"`
}

// Message is one transcript entry, either side.
type Message struct {
	Role           string `json:"role"`
	Text           string `json:"text,omitempty"`
	Reply          *Reply `json:"reply,omitempty"`
	IsButtonAction bool   `json:"isButtonAction,omitempty"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

func userMessage(text string, button bool) Message {
	return Message{Role: RoleUser, Text: text, IsButtonAction: button}
}

func assistantMessage(r Reply) Message {
	return Message{Role: RoleAssistant, Reply: &r}
}
