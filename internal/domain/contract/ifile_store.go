package contract

import (
	"mime/multipart"
)

// IFileStore persists uploaded files and returns the stored filename.
type IFileStore interface {
	Save(file *multipart.FileHeader) (string, error)
}
