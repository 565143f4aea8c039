package telegram

const welcomeMessage = `🤖 Welcome to Customer Support Bot!

I can help you with:
• Order status and tracking
• Shipping and delivery information
• Returns and refunds
• Payment methods and billing
• Product information
• Account issues
• Contact information

Type /help to see all available commands or just start chatting with me!

How can I assist you today? 😊`

const helpMessage = `📋 Available Commands:

/start - Start the bot and see welcome message
/help - Show this help message
/stats - View bot analytics and statistics
/clear - Clear conversation history
/export - Export conversation data

💬 You can also just type your questions directly!

Examples:
• "Where is my order?"
• "What's your return policy?"
• "How long does shipping take?"
• "I need help with my account"
• "What payment methods do you accept?"`

const (
	clearedMessage          = "🗑️ Conversation history cleared! Start fresh with your questions."
	unknownCommandMessage   = "I don't know that command. Type /help to see what I can do."
	processingFailedMessage = "Something went wrong while handling your message. Please try again."
)
