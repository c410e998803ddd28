// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-jose/go-jose/v4"
)

// SigningKey is one entry of a published JWKS.
type SigningKey struct {
	KeyID     string
	KeyType   string
	Use       string
	Algorithm string
	N         string
	E         string

	key any
	raw json.RawMessage
}

// PublicKey returns the parsed key material, e.g. *rsa.PublicKey.
func (k *SigningKey) PublicKey() any {
	return k.key
}

// SigningKeySet maps key ids to signing keys.
type SigningKeySet struct {
	FetchedAt time.Time
	// FromCache is set when the set was served by a cache rather than fetched for this call
	FromCache bool

	keys  map[string]*SigningKey
	order []string
}

// Lookup selects a key by id. The key id comes from an untrusted header and only
// selects a candidate, the signature check decides.
func (s *SigningKeySet) Lookup(kid string) (*SigningKey, bool) {
	if s == nil {
		return nil, false
	}

	k, ok := s.keys[kid]
	return k, ok
}

func (s *SigningKeySet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

// KeyIDs returns the key ids in publication order.
func (s *SigningKeySet) KeyIDs() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.order...)
}

// MarshalJSON renders the set back to a JWKS document with the keys as published.
func (s *SigningKeySet) MarshalJSON() ([]byte, error) {
	doc := struct {
		Keys []json.RawMessage `json:"keys"`
	}{Keys: make([]json.RawMessage, 0, s.Len())}

	for _, kid := range s.KeyIDs() {
		doc.Keys = append(doc.Keys, s.keys[kid].raw)
	}

	return json.Marshal(doc)
}

type jwkFields struct {
	KeyID     string `json:"kid"`
	KeyType   string `json:"kty"`
	Use       string `json:"use"`
	Algorithm string `json:"alg"`
	N         string `json:"n"`
	E         string `json:"e"`
}

// ParseKeySet decodes a JWKS document. Entries without a kid, duplicated kids and
// keys go-jose cannot parse are skipped; a document without a keys array is an error.
func ParseKeySet(data []byte) (*SigningKeySet, error) {
	var doc struct {
		Keys []json.RawMessage `json:"keys"`
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode JWKS document: %w", err)
	}

	if doc.Keys == nil {
		return nil, fmt.Errorf("JWKS document has no keys array")
	}

	set := &SigningKeySet{
		FetchedAt: time.Now(),
		keys:      make(map[string]*SigningKey, len(doc.Keys)),
	}

	for _, raw := range doc.Keys {
		var fields jwkFields
		if err := json.Unmarshal(raw, &fields); err != nil || fields.KeyID == "" {
			continue
		}

		if _, dup := set.keys[fields.KeyID]; dup {
			continue
		}

		var jwk jose.JSONWebKey
		if err := jwk.UnmarshalJSON(raw); err != nil || !jwk.Valid() || !jwk.IsPublic() {
			continue
		}

		set.keys[fields.KeyID] = &SigningKey{
			KeyID:     fields.KeyID,
			KeyType:   fields.KeyType,
			Use:       fields.Use,
			Algorithm: fields.Algorithm,
			N:         fields.N,
			E:         fields.E,
			key:       jwk.Key,
			raw:       append(json.RawMessage(nil), raw...),
		}
		set.order = append(set.order, fields.KeyID)
	}

	return set, nil
}
