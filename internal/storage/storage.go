package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"sync"

	"github.com/jrammler/userdesk/internal/entity"
)

var OperatorNotFoundError = errors.New("Operator not found")

type config struct {
	Operators []entity.Operator `json:"operators"`
}

type Storage interface {
	GetOperator(ctx context.Context, username string) (entity.Operator, error)
	LoadConfig() error
}

// JsonStorage keeps the console operators from a JSON file in memory.
type JsonStorage struct {
	filepath string
	config   *config
	mu       sync.RWMutex
}

func NewJsonStorage(filepath string) (Storage, error) {
	s := &JsonStorage{
		filepath: filepath,
	}
	err := s.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config on startup", "error", err)
		return nil, err
	}
	return s, nil
}

func (s *JsonStorage) LoadConfig() error {
	file, err := os.ReadFile(s.filepath)
	if err != nil {
		slog.Error("Error while reading file", "path", s.filepath, "err", err)
		return err
	}
	cfg := &config{}
	err = json.Unmarshal(file, cfg)
	if err != nil {
		slog.Error("Error while unmarshalling config", "path", s.filepath, "err", err)
		return err
	}
	if len(cfg.Operators) == 0 {
		slog.Warn("No operators found in configuration file", "path", s.filepath)
	}

	s.mu.Lock()
	s.config = cfg
	s.mu.Unlock()
	return nil
}

func (s *JsonStorage) GetOperator(ctx context.Context, username string) (entity.Operator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.config == nil {
		return entity.Operator{}, errors.New("config not loaded")
	}

	for _, operator := range s.config.Operators {
		if operator.Username == username {
			return operator, nil
		}
	}
	return entity.Operator{}, OperatorNotFoundError
}
