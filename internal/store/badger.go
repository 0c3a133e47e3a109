package store

import (
	"github.com/cockroachdb/errors"
	"github.com/dgraph-io/badger/v3"
)

// BadgerStore 공통 키 레이아웃을 그대로 쓰는 BadgerDB 저장소
type BadgerStore struct {
	db *badger.DB
}

func OpenBadgerStore(dir string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "open badger %s", dir)
	}
	return &BadgerStore{db: db}, nil
}

func (s *BadgerStore) Put(name string, data []int64) error {
	if err := validateName(name); err != nil {
		return err
	}
	// 이전 버전의 남은 청크 제거
	if err := s.db.DropPrefix([]byte(name + "/")); err != nil {
		return errors.Wrapf(err, "drop %s", name)
	}

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()

	err := forEachChunk(data, func(idx int, vals []int64) error {
		return wb.Set(chunkKey(name, idx), encodeChunk(vals))
	})
	if err != nil {
		return errors.Wrapf(err, "write %s", name)
	}
	// 메타는 마지막에 써서 Has가 완성된 데이터셋만 보게 한다
	if err := wb.Set(metaKey(name), encodeMeta(len(data))); err != nil {
		return errors.Wrapf(err, "write %s meta", name)
	}
	return errors.Wrap(wb.Flush(), "flush badger batch")
}

func (s *BadgerStore) Get(name string) ([]int64, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	var data []int64
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(metaKey(name))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		raw, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		n, err := decodeMeta(raw)
		if err != nil {
			return err
		}

		data = make([]int64, 0, n)
		opts := badger.DefaultIteratorOptions
		opts.Prefix = chunkPrefix(name)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(v []byte) error {
				var err error
				data, err = appendChunk(data, v)
				return err
			})
			if err != nil {
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

func (s *BadgerStore) Has(name string) (bool, error) {
	if err := validateName(name); err != nil {
		return false, err
	}
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(metaKey(name))
		return err
	})
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, badger.ErrKeyNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}
