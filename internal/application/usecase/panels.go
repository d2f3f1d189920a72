// Package usecase contains application-level services.
package usecase

import (
	"strings"
	"time"

	"github.com/tesso57/flank/internal/domain/session"
)

// PanelRepository abstracts persistence for sidebar state.
type PanelRepository interface {
	Load(profile string) (session.PanelState, bool, error)
	Save(state session.PanelState) error
}

// PanelService remembers which sidebars were open per profile.
type PanelService struct {
	Repo    PanelRepository
	Profile string
	Enabled bool
	Now     func() time.Time
}

// NewPanelService constructs a PanelService. A nil repo disables it.
func NewPanelService(repo PanelRepository, profile string, enabled bool) PanelService {
	profile = strings.TrimSpace(profile)
	if profile == "" {
		profile = session.DefaultProfile
	}
	return PanelService{Repo: repo, Profile: profile, Enabled: enabled && repo != nil, Now: time.Now}
}

// Restore returns the saved sidebar flags. ok is false when nothing should
// be restored.
func (s PanelService) Restore() (left, right, ok bool, err error) {
	if !s.Enabled {
		return false, false, false, nil
	}
	st, found, err := s.Repo.Load(s.Profile)
	if err != nil || !found {
		return false, false, false, err
	}
	return st.LeftActive, st.RightActive, true, nil
}

// Remember saves the sidebar flags.
func (s PanelService) Remember(left, right bool) error {
	if !s.Enabled {
		return nil
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return s.Repo.Save(session.PanelState{
		Profile:     s.Profile,
		LeftActive:  left,
		RightActive: right,
		UpdatedAt:   now(),
	})
}
