package persistence

import (
	"fmt"
	"path/filepath"

	"github.com/light-project/light-go/pkg/fileio"
	"github.com/light-project/light-go/pkg/model"
)

// Slot names the persisted value kind.
type Slot string

const (
	SlotMinCap Slot = "minimum"
	SlotSave   Slot = "save"
)

// Store reads and writes persisted target state below a state directory.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. Nothing is created until the
// first write.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// TargetDir returns the directory holding the state files of addr.
func (s *Store) TargetDir(addr model.Address) string {
	return filepath.Join(s.dir, "targets", addr.Enumerator, addr.Device, addr.Target)
}

// Path returns the file holding slot for addr.
func (s *Store) Path(addr model.Address, slot Slot) string {
	return filepath.Join(s.TargetDir(addr), string(slot))
}

// Load reads slot for addr. A missing file returns ok == false and no
// error.
func (s *Store) Load(addr model.Address, slot Slot) (v uint64, ok bool, err error) {
	v, err = fileio.ReadUint64(s.Path(addr, slot))
	if err != nil {
		if fileio.IsMissing(err) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return v, true, nil
}

// Store writes v to slot for addr, creating directories as needed. The
// slot file is replaced atomically; a failed write keeps the old value.
func (s *Store) Store(addr model.Address, slot Slot, v uint64) error {
	dir := s.TargetDir(addr)
	if err := fileio.MkPath(dir, fileio.DirMode); err != nil {
		return fmt.Errorf("%w: %w", fileio.ErrAccess, err)
	}
	return fileio.ReplaceUint64(s.Path(addr, slot), v)
}

// MinCap returns the minimum cap of addr.
func (s *Store) MinCap(addr model.Address) (uint64, bool, error) {
	return s.Load(addr, SlotMinCap)
}

// SetMinCap persists the minimum cap of addr.
func (s *Store) SetMinCap(addr model.Address, v uint64) error {
	return s.Store(addr, SlotMinCap, v)
}

// Saved returns the saved value of addr.
func (s *Store) Saved(addr model.Address) (uint64, bool, error) {
	return s.Load(addr, SlotSave)
}

// Save persists v as the saved value of addr.
func (s *Store) Save(addr model.Address, v uint64) error {
	return s.Store(addr, SlotSave, v)
}
