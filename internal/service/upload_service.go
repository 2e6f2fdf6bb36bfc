package service

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrFileType     = errors.New("file type not allowed")
	ErrFileTooLarge = errors.New("file exceeds the size limit")
)

// maxUploadSize bounds a single uploaded file
const maxUploadSize = 20 << 20 // 20 MiB

// allowedExtensions are the file types accepted for screenshots, analysis
// images, group media and course material
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".pdf":  true,
	".mp4":  true,
	".mp3":  true,
	".wav":  true,
	".webm": true,
	".ogg":  true,
}

// UploadService stores uploaded files under random names so uploads can
// never collide or overwrite each other
type UploadService struct {
	dir string
}

// NewUploadService creates a new UploadService rooted at dir, creating it
// if needed
func NewUploadService(dir string) (*UploadService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &UploadService{dir: dir}, nil
}

// Save stores an uploaded file and returns the stored file name
func (s *UploadService) Save(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return "", ErrFileType
	}
	if file.Size > maxUploadSize {
		return "", ErrFileTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", err
	}
	return name, nil
}

// Path resolves a stored file name inside the upload directory. Names that
// escape the directory are rejected.
func (s *UploadService) Path(name string) (string, error) {
	if name != filepath.Base(name) {
		return "", os.ErrNotExist
	}
	path := filepath.Join(s.dir, name)
	if _, err := os.Stat(path); err != nil {
		return "", err
	}
	return path, nil
}
