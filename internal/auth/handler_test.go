package auth

import (
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/tusharpolymers/onboard-portal/internal"
)

var _ = ginkgo.Describe("AuthMiddleware", func() {
	var (
		handler  *Handler
		service  *Service
		tokenGen *JWTTokenGenerator
		next     http.Handler
		captured *internal.User
	)

	ginkgo.BeforeEach(func() {
		tokenGen = NewJWTTokenGenerator(
			"test-access-secret-at-least-32-chars!",
			"test-refresh-secret-at-least-32-char!",
			15*time.Minute,
			7*24*time.Hour,
		)
		service = NewService(newMockUserRepository(), tokenGen)
		handler = NewHandler(service)

		captured = nil
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured, _ = internal.UserFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		})
	})

	ginkgo.It("resolves a valid bearer token to the user", func() {
		token, err := tokenGen.GenerateAccessToken(1, "arjun@tusharpolymers.com")
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		handler.AuthMiddleware(next).ServeHTTP(w, req)

		gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))
		gomega.Expect(captured).ToNot(gomega.BeNil())
		gomega.Expect(captured.ID).To(gomega.Equal(int64(1)))
		gomega.Expect(captured.Email).To(gomega.Equal("arjun@tusharpolymers.com"))
	})

	ginkgo.It("rejects a request without a token", func() {
		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		w := httptest.NewRecorder()

		handler.AuthMiddleware(next).ServeHTTP(w, req)

		gomega.Expect(w.Code).To(gomega.Equal(http.StatusUnauthorized))
		gomega.Expect(captured).To(gomega.BeNil())
	})

	ginkgo.It("rejects a malformed token", func() {
		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		w := httptest.NewRecorder()

		handler.AuthMiddleware(next).ServeHTTP(w, req)

		gomega.Expect(w.Code).To(gomega.Equal(http.StatusUnauthorized))
	})

	ginkgo.It("rejects a token for a deactivated user", func() {
		// id 3 exists in credentials but not in usersByID, like a user
		// deactivated after login
		token, err := tokenGen.GenerateAccessToken(3, "gone@tusharpolymers.com")
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		handler.AuthMiddleware(next).ServeHTTP(w, req)

		gomega.Expect(w.Code).To(gomega.Equal(http.StatusUnauthorized))
	})
})
