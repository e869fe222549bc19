// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Well-known session keys.
const (
	// SessionKeyLocation holds the URL a visitor asked for before being sent
	// to the login page.
	SessionKeyLocation = "location"
	// SessionKeyToken holds the signed authentication token.
	SessionKeyToken = "token"
)

// Session is the per-visitor key/value store persisted between requests.
// It is identified by the value of the session cookie.
type Session struct {
	// ID is the opaque session identifier (UUID) sent in the session cookie.
	ID string `json:"id"`

	// Values holds the session data. It is serialized as JSON in storage.
	Values map[string]string `json:"values"`

	// ExpiresAt is the moment after which the session is discarded.
	ExpiresAt time.Time `json:"expires_at"`

	dirty bool
}

// NewSession returns an empty session that expires after ttl. It is not
// persisted until a value is stored in it.
func NewSession(id string, ttl time.Duration) *Session {
	return &Session{
		ID:        id,
		Values:    make(map[string]string),
		ExpiresAt: time.Now().Add(ttl),
	}
}

// Get returns the value stored under key.
func (s *Session) Get(key string) (string, bool) {
	if s == nil || s.Values == nil {
		return "", false
	}
	v, ok := s.Values[key]
	return v, ok
}

// Set stores value under key and marks the session as modified.
func (s *Session) Set(key, value string) {
	if s.Values == nil {
		s.Values = make(map[string]string)
	}
	if cur, ok := s.Values[key]; ok && cur == value {
		return
	}
	s.Values[key] = value
	s.dirty = true
}

// Delete removes key and marks the session as modified if it was present.
func (s *Session) Delete(key string) {
	if _, ok := s.Values[key]; !ok {
		return
	}
	delete(s.Values, key)
	s.dirty = true
}

// Pop returns the value stored under key and removes it.
func (s *Session) Pop(key string) (string, bool) {
	v, ok := s.Get(key)
	if ok {
		s.Delete(key)
	}
	return v, ok
}

// Dirty reports whether the session changed since it was loaded.
func (s *Session) Dirty() bool {
	return s != nil && s.dirty
}

// Rotate moves the session to a new id. The values are kept and the session
// is marked as modified so that it is stored under the new id.
func (s *Session) Rotate(id string) {
	s.ID = id
	s.dirty = true
}

// MarkClean resets the modification flag after the session was persisted.
func (s *Session) MarkClean() {
	s.dirty = false
}

// Expired reports whether the session is past its expiry at now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}
