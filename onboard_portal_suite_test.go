package main_test

import (
	"context"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestOnboardPortal(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "OnboardPortal Suite")
}

var _ = Describe("OpenAPI document", func() {
	It("loads and validates", func() {
		loader := openapi3.NewLoader()
		doc, err := loader.LoadFromFile("api/openapi.yml")
		Expect(err).NotTo(HaveOccurred())

		err = doc.Validate(context.Background())
		Expect(err).NotTo(HaveOccurred())
	})

	It("documents every portal route", func() {
		loader := openapi3.NewLoader()
		doc, err := loader.LoadFromFile("api/openapi.yml")
		Expect(err).NotTo(HaveOccurred())

		for _, path := range []string{
			"/auth/login",
			"/auth/refresh",
			"/auth/logout",
			"/users/register",
			"/users/profile",
			"/tasks",
			"/tasks/{id}",
			"/documents",
			"/chatbot/ask",
			"/salary",
			"/announcements",
		} {
			Expect(doc.Paths.Find(path)).NotTo(BeNil(), "missing path %s", path)
		}
	})
})
