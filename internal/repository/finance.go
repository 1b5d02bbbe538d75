package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/chucky-1/finance-ledger/internal/model"
)

var StorageErr = errors.New("ledger storage failure")

//go:generate mockery --name=Ledger

type Ledger interface {
	Load(ctx context.Context) (model.Ledgers, error)
	Save(ctx context.Context, ledgers model.Ledgers) error
	GetOrCreate(ctx context.Context, userID string) (*model.Ledger, error)
	Append(ctx context.Context, userID string, entry model.Entry) error
}

// FileStorage keeps all ledgers in one json document.
// Writers are serialized by mu, the file is replaced atomically so readers never see a partial write.
type FileStorage struct {
	mu   sync.Mutex
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{
		path: path,
	}
}

func (f *FileStorage) Path() string {
	return f.path
}

func (f *FileStorage) Load(_ context.Context) (model.Ledgers, error) {
	return f.load()
}

func (f *FileStorage) Save(_ context.Context, ledgers model.Ledgers) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.save(ledgers)
}

func (f *FileStorage) GetOrCreate(_ context.Context, userID string) (*model.Ledger, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ledgers, err := f.load()
	if err != nil {
		return nil, err
	}
	ledger, ok := ledgers[userID]
	if ok {
		return ledger, nil
	}

	ledger = model.NewLedger()
	ledgers[userID] = ledger
	if err = f.save(ledgers); err != nil {
		return nil, err
	}
	logrus.Infof("repository.FileStorage created ledger for user %s", userID)
	return ledger, nil
}

func (f *FileStorage) Append(_ context.Context, userID string, entry model.Entry) error {
	if !entry.Kind.Valid() {
		return fmt.Errorf("repository.FileStorage.Append unknown entry kind %q", entry.Kind)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	ledgers, err := f.load()
	if err != nil {
		return err
	}
	ledger, ok := ledgers[userID]
	if !ok {
		ledger = model.NewLedger()
		ledgers[userID] = ledger
	}
	ledger.Add(entry)
	return f.save(ledgers)
}

func (f *FileStorage) load() (model.Ledgers, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return make(model.Ledgers), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: couldn't read %s: %v", StorageErr, f.path, err)
	}

	ledgers := make(model.Ledgers)
	if err = json.Unmarshal(data, &ledgers); err != nil {
		return nil, fmt.Errorf("%w: malformed %s: %v", StorageErr, f.path, err)
	}
	for user, ledger := range ledgers {
		if ledger == nil {
			ledger = model.NewLedger()
			ledgers[user] = ledger
		}
		ledger.Normalize()
	}
	return ledgers, nil
}

// save writes to a temporary file next to the store and renames it over the old one
func (f *FileStorage) save(ledgers model.Ledgers) error {
	data, err := json.MarshalIndent(ledgers, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: couldn't marshal ledgers: %v", StorageErr, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: couldn't create temporary file: %v", StorageErr, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: couldn't write %s: %v", StorageErr, tmp.Name(), err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: couldn't sync %s: %v", StorageErr, tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: couldn't close %s: %v", StorageErr, tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("%w: couldn't replace %s: %v", StorageErr, f.path, err)
	}
	return nil
}
