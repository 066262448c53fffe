package document

import (
	"mime"
	"path/filepath"
	"strings"
	"time"
)

// Document is the metadata record for one uploaded file. The stored file
// name is always server-generated; the client's original name never reaches
// disk or the database.
type Document struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	UserID       int64     `json:"user_id" gorm:"column:user_id;not null;index"`
	DocumentType string    `json:"document_type" gorm:"column:document_type;not null"`
	FileName     string    `json:"file_name" gorm:"column:file_name;uniqueIndex;not null"`
	FilePath     string    `json:"file_path" gorm:"column:file_path;not null"`
	Status       string    `json:"status" gorm:"default:pending"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Document) TableName() string {
	return "documents"
}

const (
	TypePAN         = "PAN"
	TypeAadhar      = "Aadhar"
	TypeCertificate = "Certificate"
	TypeOfferLetter = "OfferLetter"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

func ValidDocumentType(t string) bool {
	switch t {
	case TypePAN, TypeAadhar, TypeCertificate, TypeOfferLetter:
		return true
	}
	return false
}

// allowedFileTypes maps an accepted extension to the content type it must be
// declared with. Extension and declared content type are independently
// spoofable; requiring both to agree through this table is the accepted bar
// without full content sniffing.
var allowedFileTypes = map[string]string{
	".pdf":  "application/pdf",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
}

// CheckFileType reports whether the upload's extension and declared content
// type both map to the same accepted format.
func CheckFileType(originalName, declaredContentType string) bool {
	ext := strings.ToLower(filepath.Ext(originalName))
	want, ok := allowedFileTypes[ext]
	if !ok {
		return false
	}

	mediaType, _, err := mime.ParseMediaType(declaredContentType)
	if err != nil {
		return false
	}
	return mediaType == want
}

// Ext returns the lowercased extension of the original upload name; the only
// piece of client-supplied text that survives into the stored file name.
func Ext(originalName string) string {
	return strings.ToLower(filepath.Ext(originalName))
}
