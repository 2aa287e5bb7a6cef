package mocks

import (
	"errors"
	"mime/multipart"

	"github.com/mihretabn/taskhub/internal/domain/contract"
)

// MockFileStore is a mock implementation of the file store interface
type MockFileStore struct {
	ShouldFailSave bool
	SavedFiles     []string
}

var _ contract.IFileStore = (*MockFileStore)(nil)

func (m *MockFileStore) Save(fh *multipart.FileHeader) (string, error) {
	if m.ShouldFailSave {
		return "", errors.New("save failed")
	}
	path := "uploads/" + fh.Filename
	m.SavedFiles = append(m.SavedFiles, path)
	return path, nil
}
