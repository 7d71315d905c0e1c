package constant

const (
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"

	DefaultConversationTitle = "Yeni Konuşma"

	// Titles derived from the first message are clipped to this many characters.
	ConversationTitleMaxLen = 50

	DailyMessageLimit = 10
)
