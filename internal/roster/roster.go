// Package roster holds the fixed list of band members.
package roster

import (
	"errors"
	"fmt"

	"github.com/KirkDiggler/sessionsync/internal/models"
)

var (
	// ErrEmptyRoster is returned when a roster is built without members
	ErrEmptyRoster = errors.New("roster cannot be empty")

	// ErrDuplicateMember is returned when two members share an ID
	ErrDuplicateMember = errors.New("duplicate member ID")

	// ErrMissingMemberID is returned when a member has no ID
	ErrMissingMemberID = errors.New("member ID cannot be empty")
)

// Roster is an immutable, ordered list of band members
type Roster struct {
	members []models.Member
	index   map[string]int
}

// New creates a roster from the given members, keeping their order
func New(members []models.Member) (*Roster, error) {
	if len(members) == 0 {
		return nil, ErrEmptyRoster
	}

	r := &Roster{
		members: make([]models.Member, 0, len(members)),
		index:   make(map[string]int, len(members)),
	}

	for _, m := range members {
		if m.ID == "" {
			return nil, ErrMissingMemberID
		}
		if _, exists := r.index[m.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateMember, m.ID)
		}
		r.index[m.ID] = len(r.members)
		r.members = append(r.members, m)
	}

	return r, nil
}

// Default returns the band's roster
func Default() *Roster {
	r, err := New([]models.Member{
		{ID: "1", Name: "Josh", Instrument: "Guitar", Color: "blue", Email: "josh@example.com"},
		{ID: "2", Name: "Clay", Instrument: "Guitar", Color: "green", Email: "clay@example.com"},
		{ID: "3", Name: "Dan", Instrument: "Guitar/Vocals", Color: "red", Email: "dan@example.com"},
		{ID: "4", Name: "Matt", Instrument: "Bass", Color: "purple", Email: "matt@example.com"},
		{ID: "5", Name: "Cam", Instrument: "Drums", Color: "yellow", Email: "cam@example.com"},
		{ID: "6", Name: "Sean", Instrument: "Keys", Color: "orange", Email: "sean@example.com"},
	})
	if err != nil {
		panic(err)
	}
	return r
}

// Members returns a copy of the roster in order
func (r *Roster) Members() []models.Member {
	return append([]models.Member(nil), r.members...)
}

// Get looks up a member by ID
func (r *Roster) Get(id string) (models.Member, bool) {
	i, ok := r.index[id]
	if !ok {
		return models.Member{}, false
	}
	return r.members[i], true
}

// Contains reports whether a member with the given ID is on the roster
func (r *Roster) Contains(id string) bool {
	_, ok := r.index[id]
	return ok
}

// First returns the first member on the roster
func (r *Roster) First() models.Member {
	return r.members[0]
}

// Len returns the number of members on the roster
func (r *Roster) Len() int {
	return len(r.members)
}

// Filter returns the members whose IDs are in the set, in roster order
func (r *Roster) Filter(ids map[string]bool) []models.Member {
	members := make([]models.Member, 0, len(ids))
	for _, m := range r.members {
		if ids[m.ID] {
			members = append(members, m)
		}
	}
	return members
}
