package service

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	apperrors "workspace-backend/internal/errors"

	"github.com/gabriel-vasile/mimetype"
)

// TruncationMarker is appended to extracted text that was cut at the character limit
const TruncationMarker = "\n\n[... content truncated ...]"

// extMimeMap refines "text/plain" detections for formats content sniffing cannot tell apart
var extMimeMap = map[string]string{
	".md":       "text/markdown",
	".markdown": "text/markdown",
	".yaml":     "text/yaml",
	".yml":      "text/yaml",
	".csv":      "text/csv",
	".tsv":      "text/tab-separated-values",
	".json":     "application/json",
	".ndjson":   "application/x-ndjson",
	".xml":      "application/xml",
	".html":     "text/html",
	".htm":      "text/html",
	".css":      "text/css",
	".js":       "text/javascript",
	".ts":       "text/typescript",
	".go":       "text/x-go",
	".py":       "text/x-python",
	".rs":       "text/x-rust",
	".java":     "text/x-java",
	".sh":       "text/x-shellscript",
	".sql":      "text/x-sql",
	".toml":     "text/x-toml",
	".ini":      "text/x-ini",
	".log":      "text/plain",
}

// textLikeTypes are non-text/* MIME types whose content is still readable text
var textLikeTypes = map[string]bool{
	"application/json":       true,
	"application/xml":        true,
	"application/x-ndjson":   true,
	"application/yaml":       true,
	"application/x-yaml":     true,
	"application/toml":       true,
	"application/javascript": true,
	"application/x-sh":       true,
	"image/svg+xml":          true,
}

// ExtractedDocument is the text extracted from an uploaded attachment
type ExtractedDocument struct {
	Filename string `json:"filename"`
	MimeType string `json:"mimeType"`
	Size     int64  `json:"size"`
	// CharCount counts the characters of the kept content, excluding TruncationMarker
	CharCount int    `json:"charCount"`
	Truncated bool   `json:"truncated"`
	Text      string `json:"text"`
}

// AttachmentService validates uploaded documents and extracts their text
type AttachmentService struct {
	maxBytes int64
	maxChars int
}

// NewAttachmentService creates an attachment service with the given size and length limits
func NewAttachmentService(maxBytes int64, maxChars int) *AttachmentService {
	return &AttachmentService{
		maxBytes: maxBytes,
		maxChars: maxChars,
	}
}

// MaxBytes returns the largest accepted upload size
func (s *AttachmentService) MaxBytes() int64 {
	return s.maxBytes
}

// DetectMimeType detects the MIME type from content, refined by extension for plain text
func DetectMimeType(content []byte, filename string) string {
	detected := mimetype.Detect(content).String()
	if strings.HasPrefix(detected, "text/plain") {
		if refined, ok := extMimeMap[strings.ToLower(filepath.Ext(filename))]; ok {
			return strings.Replace(detected, "text/plain", refined, 1)
		}
	}
	return detected
}

// isTextLike reports whether a MIME type (parameters ignored) holds readable text
func isTextLike(mimeType string) bool {
	base := strings.TrimSpace(strings.SplitN(mimeType, ";", 2)[0])
	return strings.HasPrefix(base, "text/") || textLikeTypes[base]
}

// Extract reads at most maxBytes from r and returns the document text
func (s *AttachmentService) Extract(ctx context.Context, filename string, r io.Reader) (*ExtractedDocument, error) {
	content, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(content) == 0 {
		return nil, apperrors.ErrEmptyFile
	}
	if int64(len(content)) > s.maxBytes {
		return nil, apperrors.ErrFileTooLarge
	}

	mimeType := DetectMimeType(content, filename)
	if !isTextLike(mimeType) {
		return nil, apperrors.ErrUnsupportedFileType
	}
	if !utf8.Valid(content) {
		return nil, apperrors.ErrInvalidEncoding
	}

	doc := &ExtractedDocument{
		Filename: filepath.Base(filename),
		MimeType: mimeType,
		Size:     int64(len(content)),
	}

	content = bytes.TrimPrefix(content, []byte("\xef\xbb\xbf"))
	text := strings.ReplaceAll(string(content), "\r\n", "\n")

	doc.CharCount = utf8.RuneCountInString(text)
	if doc.CharCount > s.maxChars {
		runes := []rune(text)
		text = string(runes[:s.maxChars]) + TruncationMarker
		doc.CharCount = s.maxChars
		doc.Truncated = true
	}
	doc.Text = text

	return doc, nil
}
