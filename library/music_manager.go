package library

import (
	"notevault/model"
)

// MusicManager factors the music-entity lifecycle out of the root manager.
// It operates on the same document handle; edits made here are immediately
// visible through the root.
type MusicManager struct {
	mgr *Manager
}

// NewMusicManager wraps the root manager.
func NewMusicManager(mgr *Manager) *MusicManager {
	return &MusicManager{mgr: mgr}
}

// Create adds an empty music, optionally seeded with a localized title.
func (m *MusicManager) Create(user model.UserID, lang, title string) model.MusicID {
	return m.mgr.CreateMusic(user, lang, title)
}

// Delete removes the music if present. Always returns true, matching the
// root manager's delete contract.
func (m *MusicManager) Delete(user model.UserID, id model.MusicID) bool {
	return m.mgr.DeleteMusic(user, id)
}

// Edit returns a mutation handle bound to one music.
func (m *MusicManager) Edit(user model.UserID, id model.MusicID) MusicEditor {
	return m.mgr.EditMusic(user, id)
}
