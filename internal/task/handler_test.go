package task_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tusharpolymers/onboard-portal/internal"
	"github.com/tusharpolymers/onboard-portal/internal/task"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

var _ = Describe("Task Handler", func() {
	var (
		handler  *task.Handler
		mockRepo *mockTaskRepository
		router   *chi.Mux
	)

	caller := &internal.User{ID: 1, Name: "Arjun Mehta", Role: internal.RoleEmployee}

	BeforeEach(func() {
		mockRepo = newMockTaskRepository()
		service := task.NewService(mockRepo, testLogger())
		handler = task.NewHandler(service)

		router = chi.NewRouter()
		router.Get("/tasks", handler.GetTasks)
		router.Post("/tasks", handler.CreateTask)
		router.Put("/tasks/{id}", handler.UpdateTask)
	})

	do := func(method, path string, body []byte, authed bool) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, bytes.NewReader(body))
		if authed {
			req = req.WithContext(internal.ContextWithUser(req.Context(), caller))
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	Describe("GET /tasks", func() {
		It("returns the caller's tasks", func() {
			Expect(mockRepo.Create(&task.Task{UserID: 1, Title: "Submit PAN card"})).To(Succeed())
			Expect(mockRepo.Create(&task.Task{UserID: 2, Title: "Someone else's"})).To(Succeed())

			w := do(http.MethodGet, "/tasks", nil, true)

			Expect(w.Code).To(Equal(http.StatusOK))

			var tasks []task.Task
			Expect(json.NewDecoder(w.Body).Decode(&tasks)).To(Succeed())
			Expect(tasks).To(HaveLen(1))
			Expect(tasks[0].Title).To(Equal("Submit PAN card"))
		})

		It("rejects an unauthenticated request", func() {
			w := do(http.MethodGet, "/tasks", nil, false)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Describe("POST /tasks", func() {
		It("creates a task for the named user", func() {
			body, _ := json.Marshal(map[string]any{
				"title":   "Sign offer letter",
				"user_id": 2,
			})

			w := do(http.MethodPost, "/tasks", body, true)

			Expect(w.Code).To(Equal(http.StatusCreated))

			var created task.Task
			Expect(json.NewDecoder(w.Body).Decode(&created)).To(Succeed())
			Expect(created.UserID).To(Equal(int64(2)))
			Expect(created.IsCompleted).To(BeFalse())
		})

		It("returns 400 for a missing title", func() {
			body, _ := json.Marshal(map[string]any{"user_id": 2})

			w := do(http.MethodPost, "/tasks", body, true)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("PUT /tasks/{id}", func() {
		var owned *task.Task

		BeforeEach(func() {
			owned = &task.Task{UserID: 1, Title: "Read handbook"}
			Expect(mockRepo.Create(owned)).To(Succeed())
		})

		It("toggles the completion flag", func() {
			body, _ := json.Marshal(map[string]any{"is_completed": true})

			w := do(http.MethodPut, "/tasks/1", body, true)

			Expect(w.Code).To(Equal(http.StatusOK))

			var updated task.Task
			Expect(json.NewDecoder(w.Body).Decode(&updated)).To(Succeed())
			Expect(updated.IsCompleted).To(BeTrue())
		})

		It("returns the task unchanged when the flag is omitted", func() {
			w := do(http.MethodPut, "/tasks/1", []byte(`{}`), true)

			Expect(w.Code).To(Equal(http.StatusOK))

			var updated task.Task
			Expect(json.NewDecoder(w.Body).Decode(&updated)).To(Succeed())
			Expect(updated.IsCompleted).To(BeFalse())
		})

		It("returns 404 for an unknown id", func() {
			body, _ := json.Marshal(map[string]any{"is_completed": true})

			w := do(http.MethodPut, "/tasks/999", body, true)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("returns 403 when the task belongs to someone else", func() {
			other := &task.Task{UserID: 2, Title: "Not yours"}
			Expect(mockRepo.Create(other)).To(Succeed())

			body, _ := json.Marshal(map[string]any{"is_completed": true})

			w := do(http.MethodPut, "/tasks/2", body, true)

			Expect(w.Code).To(Equal(http.StatusForbidden))

			stored, err := mockRepo.GetByID(other.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.IsCompleted).To(BeFalse())
		})

		It("returns 400 for a non-numeric id", func() {
			w := do(http.MethodPut, "/tasks/abc", []byte(`{}`), true)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})
})
