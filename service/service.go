package service

import (
	"errors"
	"fmt"
	"sort"
)

// Service defines the lifecycle interface for infrastructure subsystems
// Services manage long-lived resources that outlive a game session: the audio
// speaker, the status endpoint
//
// Lifecycle:
//  1. Construction
//  2. Start() - open resources, launch background goroutines
//  3. [runtime operation]
//  4. Stop() - halt goroutines, release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must Start before this one
	// Return nil or empty slice if no dependencies
	Dependencies() []string

	// Start begins service operation
	Start() error

	// Stop halts service operation and releases resources
	// Must be idempotent - safe to call multiple times
	Stop() error
}

// ErrDuplicate is returned when two services share a name
var ErrDuplicate = errors.New("duplicate service")

// Hub starts services in dependency order and stops them in reverse
type Hub struct {
	services map[string]Service
	started  []Service
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{services: make(map[string]Service)}
}

// Register adds a service
func (h *Hub) Register(s Service) error {
	if _, ok := h.services[s.Name()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, s.Name())
	}
	h.services[s.Name()] = s
	return nil
}

// Order returns service names in start order
// Ties are broken by name so the order is stable
func (h *Hub) Order() ([]string, error) {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(h.services))
	order := make([]string, 0, len(h.services))

	var visit func(name string, path []string) error
	visit = func(name string, path []string) error {
		s, ok := h.services[name]
		if !ok {
			return fmt.Errorf("service %s: unknown dependency %s", path[len(path)-1], name)
		}
		switch state[name] {
		case visiting:
			return fmt.Errorf("dependency cycle: %v", append(path, name))
		case done:
			return nil
		}
		state[name] = visiting
		deps := append([]string(nil), s.Dependencies()...)
		sort.Strings(deps)
		for _, dep := range deps {
			if err := visit(dep, append(path, name)); err != nil {
				return err
			}
		}
		state[name] = done
		order = append(order, name)
		return nil
	}

	names := make([]string, 0, len(h.services))
	for name := range h.services {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := visit(name, nil); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// Start starts every service in dependency order
// On failure the services already started are stopped and the error returned
func (h *Hub) Start() error {
	order, err := h.Order()
	if err != nil {
		return err
	}
	for _, name := range order {
		s := h.services[name]
		if err := s.Start(); err != nil {
			stopErr := h.Stop()
			return errors.Join(fmt.Errorf("start %s: %w", name, err), stopErr)
		}
		h.started = append(h.started, s)
	}
	return nil
}

// Stop stops started services in reverse start order and joins their errors
func (h *Hub) Stop() error {
	var errs []error
	for i := len(h.started) - 1; i >= 0; i-- {
		s := h.started[i]
		if err := s.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop %s: %w", s.Name(), err))
		}
	}
	h.started = nil
	return errors.Join(errs...)
}
