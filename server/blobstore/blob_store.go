package blobstore

import (
	"path"

	"github.com/ericzzh/mattermost-plugin-offboard/server/app"
	"github.com/mattermost/mattermost-server/v6/model"
	"github.com/mattermost/mattermost-server/v6/shared/filestore"
	"github.com/pkg/errors"
)

// Backend is the part of the server file backend the blob store needs.
type Backend interface {
	FileExists(path string) (bool, error)
	RemoveFile(path string) error
}

// BlobStore removes uploaded files and avatars from the server file storage.
type BlobStore struct {
	backend Backend
}

func New(backend Backend) *BlobStore {
	return &BlobStore{backend: backend}
}

// NewFromConfig opens the file backend configured on the server.
func NewFromConfig(settings *model.FileSettings) (*BlobStore, error) {
	backend, err := filestore.NewFileBackend(settings.ToFileBackendSettings(false))
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file backend")
	}
	return New(backend), nil
}

// AvatarPath is where the server keeps the profile image of the user.
func AvatarPath(userId string) string {
	return path.Join("users", userId, "profile.png")
}

func (s *BlobStore) RemoveUpload(file *app.FileRef) error {
	for _, p := range file.Paths() {
		if err := s.remove(p); err != nil {
			return errors.Wrapf(err, "failed to remove file %s", file.Id)
		}
	}
	return nil
}

func (s *BlobStore) RemoveAvatar(user *app.User) error {
	if err := s.remove(AvatarPath(user.Id)); err != nil {
		return errors.Wrapf(err, "failed to remove avatar of user %s", user.Id)
	}
	return nil
}

// remove deletes the blob, a missing blob is already removed.
func (s *BlobStore) remove(p string) error {
	exists, err := s.backend.FileExists(p)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}
	return s.backend.RemoveFile(p)
}
