package store

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var registrationsBucket = []byte("registrations")

// Registration records one attempt to push the command surface to the platform.
type Registration struct {
	AppID       string    `json:"app_id"`
	Commands    []string  `json:"commands"`
	Fingerprint string    `json:"fingerprint"`
	OK          bool      `json:"ok"`
	Error       string    `json:"error,omitempty"`
	At          time.Time `json:"at"`
}

type Store interface {
	RecordRegistration(r Registration) error
	LastRegistration(appID string) (*Registration, error)
	Close() error
}

type BoltStore struct {
	db *bolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(registrationsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating registrations bucket: %w", err)
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) RecordRegistration(r Registration) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		data, err := json.Marshal(r)
		if err != nil {
			return err
		}
		return tx.Bucket(registrationsBucket).Put([]byte(r.AppID), data)
	})
}

// LastRegistration returns nil, nil when nothing was recorded for appID.
func (s *BoltStore) LastRegistration(appID string) (*Registration, error) {
	var r Registration
	var found bool
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(registrationsBucket).Get([]byte(appID))
		if v == nil {
			return nil
		}
		found = true
		return json.Unmarshal(v, &r)
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &r, nil
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
