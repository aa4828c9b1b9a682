package s3_test

import (
	"context"
	"errors"
	"hotelier/config"
	"hotelier/infras/otel/mocks"
	"hotelier/infras/s3"
	s3Mocks "hotelier/infras/s3/mocks"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestObjectKeyFromURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.External.S3.PublicDomain = "https://cdn.example.com/"
	cfg.External.S3.BucketName = "hotelier"

	svc := s3.New(cfg, mocks.NewOtel())

	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{name: "own object", url: "https://cdn.example.com/rooms/a.png", expected: "rooms/a.png"},
		{name: "foreign host", url: "https://images.example.org/rooms/a.png", expected: ""},
		{name: "empty", url: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, svc.ObjectKeyFromURL(tt.url))
		})
	}
}

func TestDeleteByURLs(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := s3Mocks.NewMockS3(ctrl)

	storage.EXPECT().ObjectKeyFromURL("https://cdn.example.com/rooms/a.png").Return("rooms/a.png")
	storage.EXPECT().ObjectKeyFromURL("https://elsewhere.example.org/b.png").Return("")
	storage.EXPECT().ObjectKeyFromURL("https://cdn.example.com/rooms/c.png").Return("rooms/c.png")

	storage.EXPECT().DeleteFile(gomock.Any(), "rooms/a.png").Return(errors.New("gone"))
	storage.EXPECT().DeleteFile(gomock.Any(), "rooms/c.png").Return(nil)

	s3.DeleteByURLs(context.Background(), storage,
		"https://cdn.example.com/rooms/a.png",
		"https://elsewhere.example.org/b.png",
		"https://cdn.example.com/rooms/c.png",
	)
}
