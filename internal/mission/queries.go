package mission

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/osse101/MobMissions_Go/internal/domain"
)

// ListMissions returns the character's missions with a success chance preview for the given crew
func (s *service) ListMissions(ctx context.Context, characterID uuid.UUID, filter domain.MissionFilter, crewIDs []uuid.UUID) ([]domain.MissionView, error) {
	var (
		character *domain.Character
		crew      []domain.CrewMember
		missions  []domain.Mission
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		character, err = s.loadCharacter(gctx, characterID)
		return err
	})
	g.Go(func() error {
		var err error
		crew, err = loadCrew(gctx, s.repo, characterID, crewIDs)
		return err
	})
	g.Go(func() error {
		var err error
		missions, err = s.repo.ListMissions(gctx, characterID, filter)
		if err != nil {
			return fmt.Errorf("failed to list missions: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := time.Now()
	views := make([]domain.MissionView, 0, len(missions))
	for i := range missions {
		m := &missions[i]
		view := domain.MissionView{
			Mission:       *m,
			SuccessChance: SuccessChance(m, character, crew),
		}
		if m.Progress != nil {
			view.Progress = m.Progress.At(now)
		}
		views = append(views, view)
	}
	return views, nil
}

// GetMission returns a single mission owned by the character
func (s *service) GetMission(ctx context.Context, characterID, missionID uuid.UUID) (*domain.Mission, error) {
	return s.repo.GetMission(ctx, characterID, missionID)
}

// PreviewChance breaks down the success chance of a mission for a candidate crew
func (s *service) PreviewChance(ctx context.Context, characterID, missionID uuid.UUID, crewIDs []uuid.UUID) (*domain.ChancePreview, error) {
	var (
		m         *domain.Mission
		character *domain.Character
		crew      []domain.CrewMember
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		m, err = s.repo.GetMission(gctx, characterID, missionID)
		return err
	})
	g.Go(func() error {
		var err error
		character, err = s.loadCharacter(gctx, characterID)
		return err
	})
	g.Go(func() error {
		var err error
		crew, err = loadCrew(gctx, s.repo, characterID, crewIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	contributions := make(map[string]int, len(crew))
	for _, member := range crew {
		contributions[member.ID.String()] = Contribution(member, m)
	}

	return &domain.ChancePreview{
		MissionID:     m.ID,
		SuccessChance: SuccessChance(m, character, crew),
		RawChance:     RawSuccessChance(m, character, crew),
		Contributions: contributions,
	}, nil
}

// GetInProgress returns every in-progress mission across characters
func (s *service) GetInProgress(ctx context.Context) ([]domain.Mission, error) {
	missions, err := s.repo.GetInProgressMissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get in-progress missions: %w", err)
	}
	return missions, nil
}
