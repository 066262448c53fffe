package document

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tusharpolymers/onboard-portal/internal"
)

// Mock service recording calls
type mockDocumentService struct {
	uploadCalls int
	uploadErr   error
	uploaded    *Document
	listed      []*Document
	listErr     error
}

func (m *mockDocumentService) Upload(callerID int64, in UploadInput) (*Document, error) {
	m.uploadCalls++
	if m.uploadErr != nil {
		return nil, m.uploadErr
	}
	if m.uploaded != nil {
		return m.uploaded, nil
	}
	return &Document{ID: 1, UserID: callerID, DocumentType: in.DocumentType, Status: StatusPending}, nil
}

func (m *mockDocumentService) GetDocumentsForUser(userID int64) ([]*Document, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.listed, nil
}

// trackingReader reports whether anything consumed the request body.
type trackingReader struct {
	inner io.Reader
	read  bool
}

func (t *trackingReader) Read(p []byte) (int, error) {
	t.read = true
	return t.inner.Read(p)
}

func multipartBody(fieldName, fileName, content string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("documentType", TypePAN)
	part, _ := mw.CreateFormFile(fieldName, fileName)
	_, _ = io.Copy(part, strings.NewReader(content))
	_ = mw.Close()
	return &buf, mw.FormDataContentType()
}

var _ = Describe("Document Handler", func() {
	var (
		handler *Handler
		service *mockDocumentService
	)

	caller := &internal.User{ID: 7, Name: "Arjun Mehta", Role: internal.RoleEmployee}

	BeforeEach(func() {
		service = &mockDocumentService{}
		handler = NewHandler(service, 1<<20)
	})

	withUser := func(r *http.Request) *http.Request {
		return r.WithContext(internal.ContextWithUser(r.Context(), caller))
	}

	Describe("Upload", func() {
		It("rejects an unauthenticated request before reading the body", func() {
			body := &trackingReader{inner: strings.NewReader("should never be parsed")}
			req := httptest.NewRequest(http.MethodPost, "/documents", body)
			req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
			w := httptest.NewRecorder()

			handler.Upload(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(body.read).To(BeFalse())
			Expect(service.uploadCalls).To(BeZero())
		})

		It("passes the file part and form fields to the service", func() {
			buf, contentType := multipartBody("document", "pan_card.pdf", "pdf bytes")
			req := withUser(httptest.NewRequest(http.MethodPost, "/documents", buf))
			req.Header.Set("Content-Type", contentType)
			w := httptest.NewRecorder()

			handler.Upload(w, req)

			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(service.uploadCalls).To(Equal(1))

			var doc Document
			Expect(json.NewDecoder(w.Body).Decode(&doc)).To(Succeed())
			Expect(doc.UserID).To(Equal(int64(7)))
			Expect(doc.DocumentType).To(Equal(TypePAN))
		})

		It("returns 400 when the file part is missing", func() {
			var buf bytes.Buffer
			mw := multipart.NewWriter(&buf)
			_ = mw.WriteField("documentType", TypePAN)
			_ = mw.Close()

			req := withUser(httptest.NewRequest(http.MethodPost, "/documents", &buf))
			req.Header.Set("Content-Type", mw.FormDataContentType())
			w := httptest.NewRecorder()

			handler.Upload(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(service.uploadCalls).To(BeZero())
		})

		It("returns 413 when the body exceeds the request cap", func() {
			handler = NewHandler(service, 100)

			// The cap is the file limit plus multipart headroom, so the body
			// has to clear both to trigger MaxBytesReader.
			buf, contentType := multipartBody("document", "big.pdf", strings.Repeat("a", 100+multipartMemory+1024))
			req := withUser(httptest.NewRequest(http.MethodPost, "/documents", buf))
			req.Header.Set("Content-Type", contentType)
			w := httptest.NewRecorder()

			handler.Upload(w, req)

			Expect(w.Code).To(Equal(http.StatusRequestEntityTooLarge))
			Expect(service.uploadCalls).To(BeZero())
		})

		It("accepts a file just under the limit when built with the production default", func() {
			handler = NewHandler(service, internal.DefaultMaxUploadSize)

			content := strings.Repeat("a", int(internal.DefaultMaxUploadSize)-100)
			buf, contentType := multipartBody("document", "pan.pdf", content)
			req := withUser(httptest.NewRequest(http.MethodPost, "/documents", buf))
			req.Header.Set("Content-Type", contentType)
			w := httptest.NewRecorder()

			handler.Upload(w, req)

			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(service.uploadCalls).To(Equal(1))
		})

		It("maps service rejections through the error taxonomy", func() {
			service.uploadErr = internal.ErrBadFileType

			buf, contentType := multipartBody("document", "nasty.exe", "x")
			req := withUser(httptest.NewRequest(http.MethodPost, "/documents", buf))
			req.Header.Set("Content-Type", contentType)
			w := httptest.NewRecorder()

			handler.Upload(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("List", func() {
		It("returns the caller's documents", func() {
			service.listed = []*Document{
				{ID: 1, UserID: 7, FileName: "document-7-100.pdf"},
				{ID: 2, UserID: 7, FileName: "document-7-101.png"},
			}

			req := withUser(httptest.NewRequest(http.MethodGet, "/documents", nil))
			w := httptest.NewRecorder()

			handler.List(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var docs []Document
			Expect(json.NewDecoder(w.Body).Decode(&docs)).To(Succeed())
			Expect(docs).To(HaveLen(2))
			Expect(docs[0].FileName).To(Equal("document-7-100.pdf"))
		})

		It("rejects an unauthenticated request", func() {
			req := httptest.NewRequest(http.MethodGet, "/documents", nil)
			w := httptest.NewRecorder()

			handler.List(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})
	})
})
