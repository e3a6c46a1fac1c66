package boards

import (
	"github.com/pkg/errors"
)

// File represents the structure of boards.json.
type File struct {
	Boards []Profile `json:"boards"`
}

// Registry holds the loaded board profiles.
type Registry struct {
	profiles map[string]*Profile
	all      []Profile
}

// NewRegistry creates a registry from loaded profiles.
func NewRegistry(profiles []Profile) *Registry {
	registry := &Registry{
		profiles: make(map[string]*Profile),
		all:      profiles,
	}
	for i := range profiles {
		registry.profiles[profiles[i].Name] = &profiles[i]
	}
	return registry
}

// LoadRegistry loads, validates and indexes the embedded boards.json.
func LoadRegistry() (*Registry, error) {
	file, err := Load[File]("boards.json")
	if err != nil {
		return nil, err
	}
	if len(file.Boards) == 0 {
		return nil, errors.New("no boards loaded from boards.json")
	}
	for i := range file.Boards {
		if err := file.Boards[i].Validate(); err != nil {
			return nil, err
		}
	}
	return NewRegistry(file.Boards), nil
}

// MustLoadRegistry loads a registry, panicking on error.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByName returns the profile with the given name, or nil if not found.
func (r *Registry) GetByName(name string) *Profile {
	return r.profiles[name]
}

// Lookup is GetByName with an error for unknown names.
func (r *Registry) Lookup(name string) (*Profile, error) {
	p := r.GetByName(name)
	if p == nil {
		return nil, errors.Errorf("unknown board %q", name)
	}
	return p, nil
}

// All returns all profiles.
func (r *Registry) All() []Profile {
	return r.all
}

// Count returns the number of profiles.
func (r *Registry) Count() int {
	return len(r.all)
}
