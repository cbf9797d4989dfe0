package services

import (
	"formpick/internal/models"
	"formpick/internal/storage"
	"formpick/internal/structures"
	"slices"
	"strings"
	"sync"
)

type MachineServiceInterface interface {
	List() []string
	Add(name string) ([]string, error)
	Remove(name string) ([]string, error)
	Default() string
}

// MachineService keeps the studio's equipment list used to label workout
// log exercises.
type MachineService struct {
	mu       sync.Mutex
	store    storage.RecordStore
	defaults []string
}

func NewMachineService(store storage.RecordStore, conf *structures.Config) *MachineService {
	return &MachineService{store: store, defaults: conf.Studio.Machines}
}

func (s *MachineService) load() []string {
	machines := storage.Read(s.store, storage.Machines.Key(), []string{})
	if len(machines) == 0 {
		return slices.Clone(s.defaults)
	}
	return machines
}

func (s *MachineService) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Default is the machine a new exercise row starts with.
func (s *MachineService) Default() string {
	machines := s.List()
	if len(machines) == 0 {
		return ""
	}
	return machines[0]
}

func (s *MachineService) Add(name string) ([]string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, models.ErrMachineRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	machines := s.load()
	if slices.Contains(machines, name) {
		return nil, models.ErrMachineExists
	}
	machines = append([]string{name}, machines...)
	if err := storage.Write(s.store, storage.Machines.Key(), machines); err != nil {
		return nil, err
	}
	return machines, nil
}

func (s *MachineService) Remove(name string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	machines := slices.DeleteFunc(s.load(), func(m string) bool { return m == name })
	if err := storage.Write(s.store, storage.Machines.Key(), machines); err != nil {
		return nil, err
	}
	return machines, nil
}
