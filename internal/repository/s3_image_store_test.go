package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyFromURL(t *testing.T) {
	store := &S3ImageStore{
		bucket:    "portfolio",
		publicURL: "http://cdn.example.com",
	}

	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "matching url",
			url:  "http://cdn.example.com/portfolio/gallery/01ARZ-photo.webp",
			want: "gallery/01ARZ-photo.webp",
		},
		{
			name: "foreign host",
			url:  "http://other.example.com/portfolio/gallery/photo.webp",
			want: "",
		},
		{
			name: "wrong bucket",
			url:  "http://cdn.example.com/other-bucket/photo.webp",
			want: "",
		},
		{
			name: "empty url",
			url:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, store.KeyFromURL(tt.url))
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"photo.png", "photo.png"},
		{"my photo (1).png", "my-photo--1-.png"},
		{"../../etc/passwd", "passwd"},
		{`C:\Users\me\img.png`, "img.png"},
		{"héllo.png", "h-llo.png"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeFilename(tt.in), "sanitizeFilename(%q)", tt.in)
	}
}
