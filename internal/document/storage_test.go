package document

import (
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DiskStore", func() {
	var (
		dir   string
		store *DiskStore
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()

		var err error
		store, err = NewDiskStore(dir)
		Expect(err).NotTo(HaveOccurred())
	})

	It("creates the directory when missing", func() {
		nested := filepath.Join(dir, "a", "b")

		_, err := NewDiskStore(nested)
		Expect(err).NotTo(HaveOccurred())
		Expect(nested).To(BeADirectory())
	})

	Describe("Save", func() {
		It("writes the content and reports the byte count", func() {
			path, written, err := store.Save("document-1-100.pdf", strings.NewReader("hello"))

			Expect(err).NotTo(HaveOccurred())
			Expect(written).To(Equal(int64(5)))

			data, err := os.ReadFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(Equal("hello"))
		})

		It("refuses to overwrite an existing file", func() {
			_, _, err := store.Save("document-1-100.pdf", strings.NewReader("first"))
			Expect(err).NotTo(HaveOccurred())

			_, _, err = store.Save("document-1-100.pdf", strings.NewReader("second"))
			Expect(err).To(HaveOccurred())
		})

		It("strips directory components from the name", func() {
			path, _, err := store.Save("../escape.pdf", strings.NewReader("x"))

			Expect(err).NotTo(HaveOccurred())
			Expect(filepath.Dir(path)).To(Equal(dir))
		})
	})

	Describe("Remove", func() {
		It("deletes a stored file", func() {
			path, _, err := store.Save("document-1-100.pdf", strings.NewReader("x"))
			Expect(err).NotTo(HaveOccurred())

			Expect(store.Remove("document-1-100.pdf")).To(Succeed())
			Expect(path).NotTo(BeAnExistingFile())
		})
	})
})
