package store

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
)

// pebbleBatchChunks 배치 하나에 모으는 최대 청크 수 (~32MB)
const pebbleBatchChunks = 64

// PebbleStore 공통 키 레이아웃을 쓰는 PebbleDB 저장소
type PebbleStore struct {
	db *pebble.DB
}

func OpenPebbleStore(dir string) (*PebbleStore, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, errors.Wrapf(err, "open pebble %s", dir)
	}
	return &PebbleStore{db: db}, nil
}

func (s *PebbleStore) Put(name string, data []int64) error {
	if err := validateName(name); err != nil {
		return err
	}

	// 메타를 먼저 지워 쓰는 도중에는 Has가 false가 되게 한다
	batch := s.db.NewBatch()
	if err := batch.Delete(metaKey(name), nil); err != nil {
		batch.Close()
		return err
	}
	if err := batch.DeleteRange(chunkPrefix(name), chunkUpperBound(name), nil); err != nil {
		batch.Close()
		return err
	}

	err := forEachChunk(data, func(idx int, vals []int64) error {
		if err := batch.Set(chunkKey(name, idx), encodeChunk(vals), nil); err != nil {
			return err
		}
		if (idx+1)%pebbleBatchChunks == 0 {
			if err := batch.Commit(pebble.NoSync); err != nil {
				return err
			}
			batch.Close()
			batch = s.db.NewBatch()
		}
		return nil
	})
	if err != nil {
		batch.Close()
		return errors.Wrapf(err, "write %s", name)
	}

	if err := batch.Set(metaKey(name), encodeMeta(len(data)), nil); err != nil {
		batch.Close()
		return err
	}
	defer batch.Close()
	return errors.Wrap(batch.Commit(pebble.Sync), "commit pebble batch")
}

func (s *PebbleStore) Get(name string) ([]int64, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	raw, closer, err := s.db.Get(metaKey(name))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s meta", name)
	}
	n, err := decodeMeta(raw)
	closer.Close()
	if err != nil {
		return nil, err
	}

	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: chunkPrefix(name),
		UpperBound: chunkUpperBound(name),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "iterate %s", name)
	}
	defer iter.Close()

	data := make([]int64, 0, n)
	for iter.First(); iter.Valid(); iter.Next() {
		if data, err = appendChunk(data, iter.Value()); err != nil {
			return nil, err
		}
	}
	if err := iter.Error(); err != nil {
		return nil, errors.Wrapf(err, "iterate %s", name)
	}
	if err := checkLen(name, n, data); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *PebbleStore) Has(name string) (bool, error) {
	if err := validateName(name); err != nil {
		return false, err
	}
	_, closer, err := s.db.Get(metaKey(name))
	switch {
	case err == nil:
		closer.Close()
		return true, nil
	case errors.Is(err, pebble.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (s *PebbleStore) Close() error {
	return s.db.Close()
}
