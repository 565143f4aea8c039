package intent

// FallbackIntent is the sentinel returned when no keyword matches.
const FallbackIntent = "fallback"

// Intent is one named category of customer request with its trigger
// keywords and candidate responses. Immutable after catalog construction.
type Intent struct {
	Name      string
	Keywords  []string
	Responses []string
}

// Catalog is the ordered set of supported intents. Order matters: the
// classifier's tie-break is first-declared-wins.
type Catalog struct {
	intents []Intent
	byName  map[string]*Intent
}

// NewCatalog builds a catalog from an ordered intent list. Duplicate names
// keep the first occurrence.
func NewCatalog(intents []Intent) *Catalog {
	c := &Catalog{
		intents: intents,
		byName:  make(map[string]*Intent, len(intents)),
	}
	for i := range c.intents {
		it := &c.intents[i]
		if _, ok := c.byName[it.Name]; !ok {
			c.byName[it.Name] = it
		}
	}
	return c
}

// Intents returns the ordered intent list.
func (c *Catalog) Intents() []Intent {
	return c.intents
}

// Responses returns the candidate responses for an intent name, or nil.
func (c *Catalog) Responses(name string) []string {
	if it, ok := c.byName[name]; ok {
		return it.Responses
	}
	return nil
}

// DefaultCatalog returns the built-in customer support catalog.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Intent{
		{
			Name:     "greeting",
			Keywords: []string{"hi", "hello", "hey", "good morning", "good afternoon", "good evening"},
			Responses: []string{
				"Hi! Welcome to our customer support. How can I help you today?",
				"Hello! I'm here to assist you with any questions or concerns.",
				"Hi there! Welcome to our support center. What can I help you with?",
				"Hello! How can I make your day better today?",
			},
		},
		{
			Name:     "order_status",
			Keywords: []string{"order", "status", "tracking", "shipped", "delivery", "where is my order", "track my order"},
			Responses: []string{
				"I can help you track your order! Please provide your order number and I'll check the status for you.",
				"To check your order status, I'll need your order number. What's your order number?",
				"I can look up your order status. Please share your order number with me.",
				"Let me help you track your order. Could you please provide your order number?",
			},
		},
		{
			Name:     "shipping",
			Keywords: []string{"shipping", "delivery", "shipping time", "how long", "when will it arrive", "delivery time"},
			Responses: []string{
				"We offer standard shipping (3-5 business days) and express shipping (1-2 business days). Which option would you like to know more about?",
				"Shipping times vary by location. Standard delivery is 3-5 days, express is 1-2 days.",
				"We have two shipping options: standard (3-5 days) and express (1-2 days). Which would you prefer?",
				"Standard shipping takes 3-5 business days, while express shipping takes 1-2 business days.",
			},
		},
		{
			Name:     "returns",
			Keywords: []string{"return", "refund", "exchange", "cancel", "return policy", "how to return"},
			Responses: []string{
				"We offer a 30-day return policy. Items must be in original condition with packaging. Would you like me to help you start a return?",
				"Returns are accepted within 30 days of purchase. Please keep your receipt and original packaging.",
				"You can return items within 30 days. I can help you start the return process if you'd like.",
				"Our return policy allows returns within 30 days. Items must be in original condition.",
			},
		},
		{
			Name:     "payment",
			Keywords: []string{"payment", "billing", "charge", "credit card", "payment method", "invoice", "billing issue"},
			Responses: []string{
				"We accept all major credit cards, PayPal, and bank transfers. How can I help with your payment?",
				"You can pay with Visa, MasterCard, American Express, PayPal, or bank transfer.",
				"We accept multiple payment methods including credit cards and PayPal. What payment issue can I help with?",
				"For payment assistance, we accept credit cards, PayPal, and bank transfers.",
			},
		},
		{
			Name:     "product_info",
			Keywords: []string{"product", "specifications", "features", "size", "color", "availability", "product details"},
			Responses: []string{
				"I'd be happy to help with product information. Which product are you interested in?",
				"Let me get you the details on that product. What specific information do you need?",
				"I can provide product specifications and availability. What product are you asking about?",
				"I'd love to help with product details. Which product would you like to know more about?",
			},
		},
		{
			Name:     "contact",
			Keywords: []string{"contact", "phone", "email", "support", "help", "speak to someone", "human agent"},
			Responses: []string{
				"You can reach our support team at support@company.com or call 1-800-SUPPORT. Our team is available 24/7!",
				"For immediate assistance, call us at 1-800-SUPPORT or email support@company.com.",
				"Our support team is available 24/7. Call 1-800-SUPPORT or email support@company.com.",
				"You can contact us at support@company.com or call 1-800-SUPPORT for immediate help.",
			},
		},
		{
			Name:     "account",
			Keywords: []string{"account", "login", "password", "profile", "sign up", "register", "account issue"},
			Responses: []string{
				"I can help with account issues. Are you having trouble logging in or creating an account?",
				"For account support, please provide your email address and I'll assist you.",
				"I can help with account-related questions. What specific issue are you experiencing?",
				"Let me help you with your account. What's the problem you're facing?",
			},
		},
		{
			Name:     "complaint",
			Keywords: []string{"complaint", "problem", "issue", "dissatisfied", "unhappy", "bad experience"},
			Responses: []string{
				"I'm sorry to hear about your experience. Let me help resolve this issue for you. Can you tell me more details?",
				"I apologize for any inconvenience. I'm here to help make things right. What happened?",
				"I'm sorry you're having a problem. Let me assist you in resolving this issue.",
				"I understand your concern. Let me help you with this issue right away.",
			},
		},
		{
			Name:     "goodbye",
			Keywords: []string{"bye", "goodbye", "thanks", "thank you", "see you", "farewell"},
			Responses: []string{
				"You're welcome! Have a great day!",
				"Thank you for contacting us! Feel free to reach out anytime.",
				"Happy to help! Take care!",
				"You're welcome! Don't hesitate to contact us if you need anything else.",
			},
		},
	})
}

// FallbackResponses is the generic pool used when no intent matches.
var FallbackResponses = []string{
	"I'm sorry, I didn't quite understand that. Could you please rephrase your question?",
	"I'm not sure I can help with that specific question. Could you try asking in a different way?",
	"I don't have information about that. Let me connect you with a human agent who can help better.",
	"That's an interesting question! I might not have the exact answer, but I can connect you with our support team.",
	"I'm still learning! Could you try asking about order status, shipping, returns, or product information?",
}
