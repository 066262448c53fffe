package chatbot

import (
	"fmt"
	"strings"
)

// rule matches a set of keywords against the lowercased message. Rules are
// checked in order; the first hit wins.
type rule struct {
	keywords []string
	reply    string
}

var rules = []rule{
	{
		keywords: []string{"hello", "hi"},
		reply:    "Hello %s! Welcome to Tushar Polymers. How can I help you with your onboarding today?",
	},
	{
		keywords: []string{"policy", "handbook"},
		reply:    "You can find the company handbook and all related policies in the 'Documents' section of the portal.",
	},
	{
		keywords: []string{"leave", "vacation"},
		reply:    "Our leave policy includes 20 paid vacation days per year. For sick leave and other details, please refer to the employee handbook in the 'Documents' section.",
	},
	{
		keywords: []string{"it support", "email"},
		reply:    "To set up your email or for any IT issues, please contact the IT helpdesk at support@tusharpolymers.com or visit them on the 3rd floor.",
	},
}

const fallbackReply = "That's a great question. I'd recommend reaching out to our HR department directly at hr@tusharpolymers.com for the most accurate information."

// Responder produces canned onboarding answers by keyword matching.
type Responder struct{}

func NewResponder() *Responder {
	return &Responder{}
}

// Reply answers a message on behalf of the named user.
func (r *Responder) Reply(userName, message string) string {
	lower := strings.ToLower(message)
	for _, rl := range rules {
		for _, kw := range rl.keywords {
			if strings.Contains(lower, kw) {
				if strings.Contains(rl.reply, "%s") {
					return fmt.Sprintf(rl.reply, userName)
				}
				return rl.reply
			}
		}
	}
	return fallbackReply
}
