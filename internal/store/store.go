package store

import (
	"errors"

	"github.com/smith505/youtube-shorts-manager/internal/model"
)

// ErrChannelNotFound is returned for operations on channels that were never
// created.
var ErrChannelNotFound = errors.New("channel not found")

// Store is the persistence boundary for channels, used titles, and saved
// scripts. Channels are independent namespaces; titles and scripts never
// cross channel boundaries.
//
// Titles returns a snapshot: the caller must not assume it stays current.
// Callers that read titles, decide, and append based on that decision must
// wrap the whole cycle in WithLock so concurrent generations for the same
// channel cannot both accept the same fact.
type Store interface {
	Channels() ([]model.Channel, error)
	AddChannel(name, prompt string) error

	Prompt(channel string) (string, error)
	SetPrompt(channel, prompt string) error

	Titles(channel string) ([]string, error)
	AppendTitles(channel string, titles []string) error
	DeleteTitle(channel, title string) error
	ClearTitles(channel string) error

	AppendScript(channel, script string) error

	// WithLock runs fn while holding the channel's write lock, serializing
	// read-modify-write cycles per channel.
	WithLock(channel string, fn func() error) error
}
