package store

import (
	"bytes"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"go.etcd.io/bbolt"
)

const bboltFile = "datasets.db"

// BboltStore 데이터셋마다 버킷 하나. 버킷 안 키는 "m"과 "c/<%08d>".
type BboltStore struct {
	db *bbolt.DB
}

func OpenBboltStore(dir string) (*BboltStore, error) {
	path := filepath.Join(dir, bboltFile)
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "open bbolt %s", path)
	}
	return &BboltStore{db: db}, nil
}

// 버킷 안에서는 이름 접두어가 필요 없다
var (
	bboltMeta        = []byte("m")
	bboltChunkPrefix = []byte("c/")
)

func (s *BboltStore) Put(name string, data []int64) error {
	if err := validateName(name); err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		if tx.Bucket([]byte(name)) != nil {
			if err := tx.DeleteBucket([]byte(name)); err != nil {
				return errors.Wrapf(err, "drop bucket %s", name)
			}
		}
		b, err := tx.CreateBucket([]byte(name))
		if err != nil {
			return errors.Wrapf(err, "create bucket %s", name)
		}
		// 청크 키가 정렬 순서대로 들어가므로 페이지를 꽉 채운다
		b.FillPercent = 1.0

		if err := b.Put(bboltMeta, encodeMeta(len(data))); err != nil {
			return err
		}
		return forEachChunk(data, func(idx int, vals []int64) error {
			key := append(bytes.Clone(bboltChunkPrefix), []byte(chunkSuffix(idx))...)
			return b.Put(key, encodeChunk(vals))
		})
	})
}

func (s *BboltStore) Get(name string) ([]int64, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	var data []int64
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(name))
		if b == nil {
			return ErrNotFound
		}
		n, err := decodeMeta(b.Get(bboltMeta))
		if err != nil {
			return err
		}

		data = make([]int64, 0, n)
		c := b.Cursor()
		for k, v := c.Seek(bboltChunkPrefix); k != nil && bytes.HasPrefix(k, bboltChunkPrefix); k, v = c.Next() {
			if data, err = appendChunk(data, v); err != nil {
				return err
			}
		}
		return checkLen(name, n, data)
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *BboltStore) Has(name string) (bool, error) {
	if err := validateName(name); err != nil {
		return false, err
	}
	var ok bool
	err := s.db.View(func(tx *bbolt.Tx) error {
		ok = tx.Bucket([]byte(name)) != nil
		return nil
	})
	return ok, err
}

func (s *BboltStore) Close() error {
	return s.db.Close()
}
