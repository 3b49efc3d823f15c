package upload

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"mime"
	"regexp"
	"strings"
	"time"

	"fintech-directory/internal/domain/apperr"
	"fintech-directory/pkg/id"

	"github.com/gabriel-vasile/mimetype"
)

const (
	MaxFileSize     = 10 << 20
	DefaultCategory = "documents"
	// PublicPrefix is the URL path the stored files are served under.
	PublicPrefix = "uploads"

	sniffLen = 3072
)

// AllowedTypes is the content type allow-list, in the order reported to clients.
var AllowedTypes = []string{
	"application/pdf",
	"image/jpeg",
	"image/png",
	"image/webp",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

var (
	ErrNoFile          = apperr.New(apperr.Validation, "No file provided")
	ErrTooLarge        = apperr.New(apperr.Validation, "File size exceeds 10MB limit")
	ErrTypeNotAllowed  = apperr.New(apperr.Validation, "File type not allowed. Please upload PDF, Word, or image files.")
	ErrTypeMismatch    = apperr.New(apperr.Validation, "File content does not match its declared type")
	ErrInvalidCategory = apperr.New(apperr.Validation, "Invalid upload category")
	ErrStoreFailed     = apperr.New(apperr.Unexpected, "Failed to upload file")
)

var (
	reCategory = regexp.MustCompile(`^[a-z0-9_-]{1,64}$`)
	reExt      = regexp.MustCompile(`^[a-z0-9]{1,10}$`)
)

// Store persists a file under dir/name.
type Store interface {
	Save(ctx context.Context, dir, name string, r io.Reader) (int64, error)
	Remove(dir, name string) error
}

// File is an incoming upload. Name and ContentType are what the client declared.
type File struct {
	Name        string
	Size        int64
	ContentType string
	Body        io.Reader
}

type FileInfo struct {
	ID           string    `json:"id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalName"`
	Path         string    `json:"path"`
	Size         int64     `json:"size"`
	Type         string    `json:"type"`
	Category     string    `json:"category"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

type Limits struct {
	Message      string   `json:"message"`
	AllowedTypes []string `json:"allowedTypes"`
	MaxSize      string   `json:"maxSize"`
}

type Usecase struct {
	store Store
	now   func() time.Time
}

func NewUsecase(s Store) *Usecase {
	return &Usecase{store: s, now: time.Now}
}

func (u *Usecase) Limits() Limits {
	return Limits{
		Message:      "File upload endpoint",
		AllowedTypes: append([]string(nil), AllowedTypes...),
		MaxSize:      "10MB",
	}
}

// Save validates f and writes it to the store under category.
func (u *Usecase) Save(ctx context.Context, f File, category string) (*FileInfo, error) {
	if f.Body == nil {
		return nil, ErrNoFile
	}
	category = strings.TrimSpace(category)
	if category == "" {
		category = DefaultCategory
	}
	if !reCategory.MatchString(category) {
		return nil, ErrInvalidCategory
	}
	if f.Size > MaxFileSize {
		return nil, ErrTooLarge
	}

	// the stored type and extension come from the content, never from the client
	body := bufio.NewReaderSize(f.Body, sniffLen)
	head, err := body.Peek(sniffLen)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if len(head) == 0 {
		return nil, ErrNoFile
	}
	detected := mimetype.Detect(head)
	ctype, ok := allowedType(detected)
	if !ok {
		return nil, ErrTypeNotAllowed
	}
	if declared := baseType(f.ContentType); declared != "" && declared != "application/octet-stream" && !detected.Is(declared) {
		return nil, ErrTypeMismatch
	}

	now := u.now().UTC()
	fileID := id.NewShortID()
	name := fmt.Sprintf("%d_%s", now.UnixMilli(), fileID)
	if ext := extension(detected); ext != "" {
		name += "." + ext
	}

	n, err := u.store.Save(ctx, category, name, io.LimitReader(body, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreFailed, err)
	}
	if n > MaxFileSize {
		_ = u.store.Remove(category, name)
		return nil, ErrTooLarge
	}
	if n == 0 {
		_ = u.store.Remove(category, name)
		return nil, ErrNoFile
	}

	return &FileInfo{
		ID:           fileID,
		Filename:     name,
		OriginalName: f.Name,
		Path:         PublicPrefix + "/" + category + "/" + name,
		Size:         n,
		Type:         ctype,
		Category:     category,
		UploadedAt:   now,
	}, nil
}

// allowedType returns the allow-list entry the detected type matches, aliases included.
func allowedType(m *mimetype.MIME) (string, bool) {
	for _, t := range AllowedTypes {
		if m.Is(t) {
			return t, true
		}
	}
	return "", false
}

func baseType(ct string) string {
	ct = strings.TrimSpace(ct)
	if ct == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return strings.ToLower(ct)
	}
	return mt
}

func extension(m *mimetype.MIME) string {
	ext := strings.TrimPrefix(m.Extension(), ".")
	if reExt.MatchString(ext) {
		return ext
	}
	return ""
}
