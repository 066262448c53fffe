package chatbot_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tusharpolymers/onboard-portal/internal/chatbot"
)

func TestChatbot(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Chatbot Suite")
}

var _ = Describe("Responder", func() {
	var responder *chatbot.Responder

	BeforeEach(func() {
		responder = chatbot.NewResponder()
	})

	It("greets the user by name", func() {
		reply := responder.Reply("Arjun", "Hello there")

		Expect(reply).To(ContainSubstring("Hello Arjun!"))
		Expect(reply).To(ContainSubstring("Tushar Polymers"))
	})

	It("matches keywords case-insensitively", func() {
		reply := responder.Reply("Arjun", "WHERE IS THE HANDBOOK?")

		Expect(reply).To(ContainSubstring("Documents"))
	})

	It("answers leave questions", func() {
		reply := responder.Reply("Arjun", "how many vacation days do I get?")

		Expect(reply).To(ContainSubstring("20 paid vacation days"))
	})

	It("points IT questions at the helpdesk", func() {
		reply := responder.Reply("Arjun", "I need help setting up my email")

		Expect(reply).To(ContainSubstring("support@tusharpolymers.com"))
	})

	It("falls back to HR for anything else", func() {
		reply := responder.Reply("Arjun", "what is the meaning of life?")

		Expect(reply).To(ContainSubstring("hr@tusharpolymers.com"))
	})

	It("uses the first matching rule", func() {
		// "hi" appears before "policy" in the rule order
		reply := responder.Reply("Arjun", "hi, where is the policy document?")

		Expect(reply).To(ContainSubstring("Hello Arjun!"))
	})
})
