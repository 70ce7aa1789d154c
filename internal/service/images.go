package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/choreboard/internal/graphql"
)

// ImageService covers the user profile-image endpoints. These are plain
// HTTP, not GraphQL; the caller refetches the user list after a successful
// upload or removal.
type ImageService struct {
	serverURL  string
	cookie     string
	httpClient *http.Client
}

// Upload posts an image file as the multipart field "image" to
// /images/upload/:userUuid.
func (s *ImageService) Upload(ctx context.Context, userUUID, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open image: %w", err)
	}
	defer file.Close()

	var body strings.Builder
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("image", filepath.Base(path))
	if err != nil {
		return fmt.Errorf("build upload: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("read image: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("build upload: %w", err)
	}

	url := fmt.Sprintf("%s/images/upload/%s", strings.TrimRight(s.serverURL, "/"), userUUID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(body.String()))
	if err != nil {
		return fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if s.cookie != "" {
		req.AddCookie(&http.Cookie{Name: graphql.SessionCookieName, Value: s.cookie})
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upload image: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upload image: server returned %s", resp.Status)
	}
	return nil
}

// Remove deletes a user's profile image.
func (s *ImageService) Remove(ctx context.Context, userUUID string) error {
	url := fmt.Sprintf("%s/images/remove/%s", strings.TrimRight(s.serverURL, "/"), userUUID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("build remove request: %w", err)
	}
	if s.cookie != "" {
		req.AddCookie(&http.Cookie{Name: graphql.SessionCookieName, Value: s.cookie})
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("remove image: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("remove image: server returned %s", resp.Status)
	}
	return nil
}

// UserImageURL is where a user's current image is readable.
func (s *ImageService) UserImageURL(userID int) string {
	return fmt.Sprintf("%s/images/user/%d", strings.TrimRight(s.serverURL, "/"), userID)
}
