package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDownloadURLUsesCloudName(t *testing.T) {
	s := &cloudinaryStorage{cloudName: "demo"}

	url, err := s.GetDownloadURL("venues/v1/photo")
	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/venues/v1/photo", url)
}

func TestGetDownloadURLRejectsEmptyPublicID(t *testing.T) {
	s := &cloudinaryStorage{cloudName: "demo"}

	_, err := s.GetDownloadURL("")
	assert.Error(t, err)
}
