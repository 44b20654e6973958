package memory

import (
	"context"
	"strings"
	"sync"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/foot-manager/internal/domain/team"
)

// TeamRepository is the in-process registry of a season's clubs. A team's ID
// is its registration order.
type TeamRepository struct {
	mu    sync.RWMutex
	teams []*team.Team
	names map[string]int
}

func NewTeamRepository() *TeamRepository {
	return &TeamRepository{names: make(map[string]int)}
}

func (r *TeamRepository) Add(_ context.Context, item *team.Team) (*team.Team, error) {
	if item == nil {
		return nil, crerr.New("team is required")
	}

	key := strings.ToLower(strings.TrimSpace(item.Name))
	if key == "" {
		return nil, crerr.New("team name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, exists := r.names[key]; exists {
		return nil, crerr.Wrapf(team.ErrDuplicateName, "%q already registered as team %d", item.Name, existing)
	}

	item.ID = len(r.teams)
	r.teams = append(r.teams, item)
	r.names[key] = item.ID

	return item, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID int) (*team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if teamID < 0 || teamID >= len(r.teams) {
		return nil, false, nil
	}

	return r.teams[teamID], true, nil
}

func (r *TeamRepository) List(_ context.Context) ([]*team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*team.Team, 0, len(r.teams))
	out = append(out, r.teams...)

	return out, nil
}

func (r *TeamRepository) Reset(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.teams = nil
	r.names = make(map[string]int)

	return nil
}
