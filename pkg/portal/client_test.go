package portal_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tusharpolymers/onboard-portal/pkg/portal"
)

var _ = Describe("Client", func() {
	var (
		server *httptest.Server
		client *portal.Client
		ctx    context.Context
	)

	AfterEach(func() {
		if server != nil {
			server.Close()
		}
	})

	newClient := func(handler http.Handler) *portal.Client {
		server = httptest.NewServer(handler)
		return portal.NewClient(server.URL, portal.NewSession())
	}

	BeforeEach(func() {
		ctx = context.Background()
	})

	Describe("Login", func() {
		It("stores tokens and resolves the user id", func() {
			mux := http.NewServeMux()
			mux.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
				var body map[string]string
				Expect(json.NewDecoder(r.Body).Decode(&body)).To(Succeed())
				Expect(body["email"]).To(Equal("arjun@tusharpolymers.com"))

				json.NewEncoder(w).Encode(map[string]string{
					"access_token":  "access-abc",
					"refresh_token": "refresh-def",
				})
			})
			mux.HandleFunc("/api/v1/users/profile", func(w http.ResponseWriter, r *http.Request) {
				Expect(r.Header.Get("Authorization")).To(Equal("Bearer access-abc"))
				json.NewEncoder(w).Encode(map[string]any{"id": 7, "name": "Arjun Mehta"})
			})
			client = newClient(mux)

			err := client.Login(ctx, "arjun@tusharpolymers.com", "secret")

			Expect(err).ToNot(HaveOccurred())
			Expect(client.Session().AccessToken()).To(Equal("access-abc"))
			Expect(client.Session().UserID()).To(Equal(int64(7)))
		})

		It("surfaces a 401 as an APIError and keeps the session empty", func() {
			client = newClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]any{"message": "invalid credentials"})
			}))

			err := client.Login(ctx, "arjun@tusharpolymers.com", "wrong")

			var apiErr *portal.APIError
			Expect(errors.As(err, &apiErr)).To(BeTrue())
			Expect(apiErr.StatusCode).To(Equal(http.StatusUnauthorized))
			Expect(apiErr.Message).To(Equal("invalid credentials"))
			Expect(client.Session().Authenticated()).To(BeFalse())
		})
	})

	Describe("FetchTasks", func() {
		It("sends the bearer token and preserves server order", func() {
			client = newClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.URL.Path).To(Equal("/api/v1/tasks"))
				Expect(r.Header.Get("Authorization")).To(Equal("Bearer tok"))
				json.NewEncoder(w).Encode([]map[string]any{
					{"id": 2, "title": "b"},
					{"id": 1, "title": "a"},
				})
			}))
			client.Session().Set("tok", "", 7)

			tasks, err := client.FetchTasks(ctx)

			Expect(err).ToNot(HaveOccurred())
			Expect(tasks).To(HaveLen(2))
			Expect(tasks[0].ID).To(Equal(int64(2)))
			Expect(tasks[1].ID).To(Equal(int64(1)))
		})
	})

	Describe("UpdateTask", func() {
		It("PUTs the desired flag to the task path", func() {
			client = newClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.Method).To(Equal(http.MethodPut))
				Expect(r.URL.Path).To(Equal("/api/v1/tasks/5"))

				var body map[string]bool
				Expect(json.NewDecoder(r.Body).Decode(&body)).To(Succeed())
				Expect(body["is_completed"]).To(BeTrue())

				json.NewEncoder(w).Encode(map[string]any{"id": 5, "is_completed": true})
			}))
			client.Session().Set("tok", "", 7)

			updated, err := client.UpdateTask(ctx, 5, true)

			Expect(err).ToNot(HaveOccurred())
			Expect(updated.ID).To(Equal(int64(5)))
			Expect(updated.IsCompleted).To(BeTrue())
		})
	})

	Describe("UploadDocument", func() {
		It("sends a multipart body with the expected field names", func() {
			client = newClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.URL.Path).To(Equal("/api/v1/documents"))
				Expect(r.ParseMultipartForm(1 << 20)).To(Succeed())
				Expect(r.FormValue("documentType")).To(Equal("PAN"))

				file, header, err := r.FormFile("document")
				Expect(err).ToNot(HaveOccurred())
				defer file.Close()
				Expect(header.Filename).To(Equal("pan_card.pdf"))

				w.WriteHeader(http.StatusCreated)
				json.NewEncoder(w).Encode(map[string]any{
					"id":        1,
					"file_name": "document-7-12345.pdf",
					"status":    "pending",
				})
			}))
			client.Session().Set("tok", "", 7)

			doc, err := client.UploadDocument(ctx, "PAN", "pan_card.pdf", strings.NewReader("pdf bytes"))

			Expect(err).ToNot(HaveOccurred())
			Expect(doc.FileName).To(Equal("document-7-12345.pdf"))
			Expect(doc.Status).To(Equal("pending"))
		})

		It("surfaces a 413 for oversized files", func() {
			client = newClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				json.NewEncoder(w).Encode(map[string]any{"message": "file too large"})
			}))
			client.Session().Set("tok", "", 7)

			_, err := client.UploadDocument(ctx, "PAN", "big.pdf", strings.NewReader("x"))

			var apiErr *portal.APIError
			Expect(errors.As(err, &apiErr)).To(BeTrue())
			Expect(apiErr.StatusCode).To(Equal(http.StatusRequestEntityTooLarge))
		})
	})

	Describe("Logout", func() {
		It("clears the session even on server error", func() {
			client = newClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			}))
			client.Session().Set("tok", "ref", 7)

			_ = client.Logout(ctx)

			Expect(client.Session().Authenticated()).To(BeFalse())
		})
	})
})
