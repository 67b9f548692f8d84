// Package persistence is the gorm/postgres-backed snapshot store for a
// hexrealm world: it owns no simulation behavior of its own, only the
// marshal/unmarshal and row bookkeeping needed to save and resume a
// World across process restarts.
package persistence

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/hexshard/hexrealm/sim"
)

// ErrSnapshotNotFound is returned by Load when id has no matching row.
var ErrSnapshotNotFound = errors.New("persistence: snapshot not found")

// Snapshot is the gorm row backing one saved game. Data holds the
// json.Marshal of a sim.WorldExport; gorm treats it as an opaque byte
// column, the same way the teacher stores its serialized game blobs.
type Snapshot struct {
	ID        string `gorm:"primaryKey"`
	Name      string
	Turn      int
	Data      []byte
	UpdatedAt time.Time
}

// Store is a thin wrapper over *gorm.DB scoped to the Snapshot table.
type Store struct {
	db     *gorm.DB
	Logger *zap.Logger
}

// Open connects to dsn (a postgres:// URL) and migrates the snapshot
// table, following the teacher's gormbe.OpenDB connect-then-log
// pattern.
func Open(dsn string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("persistence: connecting", zap.String("dsn", redactDSN(dsn)))
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("persistence: connect failed", zap.Error(err))
		return nil, err
	}
	if err := db.AutoMigrate(&Snapshot{}); err != nil {
		return nil, err
	}
	logger.Info("persistence: connected")
	return &Store{db: db, Logger: logger}, nil
}

// redactDSN replaces everything before the last '@' of a postgres:// URL
// with "***", keeping host, port and database, so credentials embedded
// in the URL never reach the log. A DSN with no '@' is returned
// unchanged.
func redactDSN(dsn string) string {
	at := -1
	for i, c := range dsn {
		if c == '@' {
			at = i
		}
	}
	if at == -1 {
		return dsn
	}
	return "***" + dsn[at:]
}

// Save marshals export under a fresh or given id and upserts it.
func (s *Store) Save(id string, name string, turn int, export sim.WorldExport) (string, error) {
	if id == "" {
		id = uuid.NewString()
	}
	data, err := json.Marshal(export)
	if err != nil {
		return "", err
	}
	row := Snapshot{ID: id, Name: name, Turn: turn, Data: data}
	if err := s.db.Save(&row).Error; err != nil {
		return "", err
	}
	return id, nil
}

// Load reads id's snapshot and unmarshals its stored export back into
// a live World via sim.ImportWorld.
func (s *Store) Load(id string, reg *sim.Registry, logger *zap.Logger) (*sim.World, error) {
	var row Snapshot
	err := s.db.First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, err
	}
	var export sim.WorldExport
	if err := json.Unmarshal(row.Data, &export); err != nil {
		return nil, sim.ErrSerializationMismatch
	}
	return sim.ImportWorld(export, reg, logger)
}

// Meta returns id's row metadata (name/turn/updated-at) without
// unmarshaling or reconstructing the world it holds.
func (s *Store) Meta(id string) (Snapshot, error) {
	var row Snapshot
	err := s.db.Select("id", "name", "turn", "updated_at").First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Snapshot{}, ErrSnapshotNotFound
	}
	return row, err
}

// List returns every saved snapshot's id/name/turn, newest first.
func (s *Store) List() ([]Snapshot, error) {
	var rows []Snapshot
	err := s.db.Order("updated_at desc").Select("id", "name", "turn", "updated_at").Find(&rows).Error
	return rows, err
}
