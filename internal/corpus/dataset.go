package corpus

// SeedExamples returns the built-in labeled dialog set. In production the
// index is usually loaded from a dataset file by the caller; this seed keeps
// the service useful without one.
func SeedExamples() []Example {
	return []Example{
		// Greeting patterns
		{Input: "Hello", Output: "Hi there! How can I help you today?", Intent: "greeting"},
		{Input: "Hi", Output: "Hello! Welcome to our customer support. What can I assist you with?", Intent: "greeting"},
		{Input: "Good morning", Output: "Good morning! How can I make your day better today?", Intent: "greeting"},
		{Input: "Hey there", Output: "Hey! I'm here to help. What questions do you have?", Intent: "greeting"},

		// Order status patterns
		{Input: "Where is my order?", Output: "I can help you track your order! Please provide your order number and I'll check the status for you.", Intent: "order_status"},
		{Input: "Order status", Output: "To check your order status, please provide your order number.", Intent: "order_status"},
		{Input: "Track my package", Output: "I'd be happy to help you track your package. What's your order number?", Intent: "order_status"},
		{Input: "Is my order shipped?", Output: "Let me check your order status. Please provide your order number.", Intent: "order_status"},

		// Shipping patterns
		{Input: "How long does shipping take?", Output: "We offer standard shipping (3-5 business days) and express shipping (1-2 business days). Which option would you like to know more about?", Intent: "shipping"},
		{Input: "Shipping time", Output: "Shipping times vary. Standard delivery is 3-5 days, express is 1-2 days.", Intent: "shipping"},
		{Input: "When will it arrive?", Output: "Our shipping options are standard (3-5 days) and express (1-2 days).", Intent: "shipping"},
		{Input: "Delivery time", Output: "We have two shipping options: standard (3-5 days) and express (1-2 days). Which would you prefer?", Intent: "shipping"},

		// Returns patterns
		{Input: "I want to return this", Output: "We offer a 30-day return policy. Items must be in original condition with packaging. Would you like me to help you start a return?", Intent: "returns"},
		{Input: "Return policy", Output: "Returns are accepted within 30 days of purchase. Please keep your receipt and original packaging.", Intent: "returns"},
		{Input: "How do I return?", Output: "You can return items within 30 days for a full refund. Do you need assistance with the return process?", Intent: "returns"},
		{Input: "Refund", Output: "Our return policy allows returns within 30 days. Items must be in original condition.", Intent: "returns"},

		// Payment patterns
		{Input: "What payment methods do you accept?", Output: "We accept all major credit cards, PayPal, and bank transfers. How can I help with your payment?", Intent: "payment"},
		{Input: "Payment options", Output: "You can pay with Visa, MasterCard, American Express, PayPal, or bank transfer.", Intent: "payment"},
		{Input: "How can I pay?", Output: "Multiple payment methods are available, including credit cards and PayPal.", Intent: "payment"},
		{Input: "Billing", Output: "I can help with billing questions. What specific payment issue can I assist with?", Intent: "payment"},

		// Product info patterns
		{Input: "Tell me about this product", Output: "I'd be happy to help with product information. Which product are you interested in?", Intent: "product_info"},
		{Input: "Product details", Output: "Let me get you the details on that product. What specific information do you need?", Intent: "product_info"},
		{Input: "Specifications", Output: "I can provide product specifications and availability. What product are you asking about?", Intent: "product_info"},
		{Input: "Is this in stock?", Output: "Let me check the availability for you. Which product are you interested in?", Intent: "product_info"},

		// Contact patterns
		{Input: "How can I contact support?", Output: "You can reach our support team at support@company.com or call 1-800-SUPPORT. Our team is available 24/7!", Intent: "contact"},
		{Input: "Phone number", Output: "For immediate assistance, call us at 1-800-SUPPORT or email support@company.com.", Intent: "contact"},
		{Input: "Email support", Output: "Our support team is available 24/7. Call 1-800-SUPPORT or email support@company.com.", Intent: "contact"},
		{Input: "Speak to someone", Output: "I can help you with most questions, but if you need to speak to a human agent, call 1-800-SUPPORT.", Intent: "contact"},

		// Complaint patterns
		{Input: "I have a complaint", Output: "I'm sorry to hear you're having an issue. Please tell me more about the problem so I can help resolve it.", Intent: "complaint"},
		{Input: "This is terrible", Output: "I understand your frustration. Let me help you resolve this issue. What specific problem are you experiencing?", Intent: "complaint"},
		{Input: "I'm not happy", Output: "I'm sorry you're not satisfied. Please share the details of your concern so I can assist you better.", Intent: "complaint"},
		{Input: "This is unacceptable", Output: "I apologize for the inconvenience. Let me help you address this issue. What happened?", Intent: "complaint"},

		// Goodbye patterns
		{Input: "Thanks for your help", Output: "You're welcome! Is there anything else I can help you with?", Intent: "goodbye"},
		{Input: "Thank you", Output: "You're welcome! Feel free to reach out if you need any more assistance.", Intent: "goodbye"},
		{Input: "Bye", Output: "Goodbye! Have a great day!", Intent: "goodbye"},
		{Input: "See you later", Output: "See you later! Take care!", Intent: "goodbye"},
	}
}

// intentKeywords is the matcher's own keyword list. It is maintained
// separately from the intent catalog's keywords and diverges on purpose
// (it carries a "thanks" intent the catalog folds into goodbye).
var intentKeywords = map[string][]string{
	"greeting":     {"hello", "hi", "hey", "good morning", "good afternoon", "good evening"},
	"goodbye":      {"bye", "goodbye", "see you", "farewell", "take care"},
	"thanks":       {"thank you", "thanks", "appreciate", "grateful"},
	"order_status": {"order", "status", "tracking", "shipped", "delivery", "where is my order"},
	"shipping":     {"shipping", "delivery", "shipping time", "how long", "when will it arrive"},
	"returns":      {"return", "refund", "exchange", "cancel", "return policy"},
	"payment":      {"payment", "billing", "charge", "credit card", "payment method", "invoice"},
	"product_info": {"product", "specifications", "features", "size", "color", "availability"},
	"contact":      {"contact", "phone", "email", "support", "help", "speak to someone"},
	"complaint":    {"complaint", "problem", "issue", "unhappy", "dissatisfied", "angry"},
}
