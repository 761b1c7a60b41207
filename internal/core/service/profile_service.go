package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/devconnector/devconnector-api/internal/api/metrics"
	"github.com/devconnector/devconnector-api/internal/core/domain"
	"github.com/devconnector/devconnector-api/internal/core/ports"
)

// ProfileService implements the profile aggregate editor: upsert of the root
// document plus add/remove mutations on the embedded experience and education
// sub-lists.
type ProfileService struct {
	profiles ports.ProfileRepository
	users    ports.UserRepository
	github   ports.GithubClient
	logger   zerolog.Logger
}

func NewProfileService(profiles ports.ProfileRepository, users ports.UserRepository, github ports.GithubClient, logger zerolog.Logger) *ProfileService {
	return &ProfileService{profiles: profiles, users: users, github: github, logger: logger}
}

// GetByUser returns the profile for userID joined with the owning user's
// display fields.
func (s *ProfileService) GetByUser(ctx context.Context, userID string) (*ports.ProfileView, error) {
	p, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.joinOwner(ctx, p), nil
}

// ListProfiles returns the public projection of every stored profile.
func (s *ProfileService) ListProfiles(ctx context.Context) ([]*ports.ProfileView, error) {
	profiles, err := s.profiles.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*ports.ProfileView, 0, len(profiles))
	for _, p := range profiles {
		views = append(views, s.joinOwner(ctx, p))
	}
	return views, nil
}

// Upsert creates the profile on first use, otherwise merge-updates it: only
// non-empty input fields are applied, everything else is retained.
func (s *ProfileService) Upsert(ctx context.Context, in ports.UpsertProfileInput) (*domain.Profile, error) {
	var missing []string
	if in.Status == "" {
		missing = append(missing, "status is required")
	}
	if in.Skills == "" {
		missing = append(missing, "skills is required")
	}
	if len(missing) > 0 {
		return nil, domain.NewValidationError(missing...)
	}

	created := false
	p, err := s.profiles.FindByUserID(ctx, in.UserID)
	if errors.Is(err, domain.ErrProfileNotFound) {
		created = true
		p = &domain.Profile{
			UserID:     in.UserID,
			Skills:     []string{},
			Experience: []domain.Experience{},
			Education:  []domain.Education{},
		}
	} else if err != nil {
		return nil, err
	}

	applyProfileFields(p, in)
	p.UpdatedAt = time.Now().UTC()

	if created {
		err = s.profiles.Create(ctx, p)
	} else {
		err = s.profiles.Update(ctx, p)
	}
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", in.UserID).Msg("failed to upsert profile")
		return nil, err
	}

	metrics.ProfileUpdatesTotal.WithLabelValues(upsertAction(created)).Inc()
	s.logger.Info().Str("user_id", in.UserID).Bool("created", created).Msg("profile upserted")
	return p, nil
}

// AddExperience validates the entry, assigns it a fresh id and inserts it at
// the head of the experience list.
func (s *ProfileService) AddExperience(ctx context.Context, userID string, in ports.ExperienceInput) (*domain.Profile, error) {
	var missing []string
	if in.Title == "" {
		missing = append(missing, "title is required")
	}
	if in.Company == "" {
		missing = append(missing, "company is required")
	}
	if in.From.IsZero() {
		missing = append(missing, "from date is required")
	}
	if len(missing) > 0 {
		return nil, domain.NewValidationError(missing...)
	}

	p, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	p.AddExperience(domain.Experience{
		ID:          newEntryID(),
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		From:        in.From,
		To:          in.To,
		Current:     in.Current,
		Description: in.Description,
	})
	p.UpdatedAt = time.Now().UTC()

	if err := s.profiles.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// RemoveExperience deletes the entry with the given id. A missing id is
// surfaced as ErrEntryNotFound rather than silently ignored.
func (s *ProfileService) RemoveExperience(ctx context.Context, userID, entryID string) (*domain.Profile, error) {
	p, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !p.RemoveExperience(entryID) {
		return nil, domain.ErrEntryNotFound
	}
	p.UpdatedAt = time.Now().UTC()

	if err := s.profiles.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// AddEducation mirrors AddExperience over the education sub-list.
func (s *ProfileService) AddEducation(ctx context.Context, userID string, in ports.EducationInput) (*domain.Profile, error) {
	var missing []string
	if in.School == "" {
		missing = append(missing, "school is required")
	}
	if in.Degree == "" {
		missing = append(missing, "degree is required")
	}
	if in.FieldOfStudy == "" {
		missing = append(missing, "field of study is required")
	}
	if in.From.IsZero() {
		missing = append(missing, "from date is required")
	}
	if len(missing) > 0 {
		return nil, domain.NewValidationError(missing...)
	}

	p, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	p.AddEducation(domain.Education{
		ID:           newEntryID(),
		School:       in.School,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		From:         in.From,
		To:           in.To,
		Current:      in.Current,
		Description:  in.Description,
	})
	p.UpdatedAt = time.Now().UTC()

	if err := s.profiles.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// RemoveEducation deletes the entry with the given id, surfacing
// ErrEntryNotFound when absent.
func (s *ProfileService) RemoveEducation(ctx context.Context, userID, entryID string) (*domain.Profile, error) {
	p, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !p.RemoveEducation(entryID) {
		return nil, domain.ErrEntryNotFound
	}
	p.UpdatedAt = time.Now().UTC()

	if err := s.profiles.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeleteAccount removes the profile and then the user record. The deletes are
// two independent store operations; a partial failure between them leaves an
// orphaned user. Posts authored by the user are deliberately not cascaded:
// their author fields are snapshots, so they stay renderable after the
// account is gone.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID string) error {
	if err := s.profiles.DeleteByUserID(ctx, userID); err != nil && !errors.Is(err, domain.ErrProfileNotFound) {
		return err
	}
	if err := s.users.Delete(ctx, userID); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("profile removed but user delete failed")
		return err
	}

	s.logger.Info().Str("user_id", userID).Msg("account deleted")
	return nil
}

// GithubRepos proxies the user's latest public GitHub repositories.
func (s *ProfileService) GithubRepos(ctx context.Context, username string) ([]ports.GithubRepo, error) {
	return s.github.Repos(ctx, username)
}

// joinOwner builds the public projection for a profile. A missing owner
// account (orphaned profile) degrades to an unjoined view rather than failing
// the whole request.
func (s *ProfileService) joinOwner(ctx context.Context, p *domain.Profile) *ports.ProfileView {
	user, err := s.users.FindByID(ctx, p.UserID)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Warn().Err(err).Str("user_id", p.UserID).Msg("failed to join profile owner")
		}
		return &ports.ProfileView{Profile: *p}
	}
	return buildProfileView(p, user)
}

// applyProfileFields copies the non-empty input fields onto the profile.
// Skills arrives as a comma-delimited text list and is normalized into a
// trimmed token sequence with empty tokens dropped.
func applyProfileFields(p *domain.Profile, in ports.UpsertProfileInput) {
	if in.Company != "" {
		p.Company = in.Company
	}
	if in.Website != "" {
		p.Website = in.Website
	}
	if in.Location != "" {
		p.Location = in.Location
	}
	if in.Status != "" {
		p.Status = in.Status
	}
	if in.Bio != "" {
		p.Bio = in.Bio
	}
	if in.GithubUsername != "" {
		p.GithubUsername = in.GithubUsername
	}
	if in.Skills != "" {
		p.Skills = splitSkills(in.Skills)
	}
	if in.YouTube != "" {
		p.Social.YouTube = in.YouTube
	}
	if in.Twitter != "" {
		p.Social.Twitter = in.Twitter
	}
	if in.Facebook != "" {
		p.Social.Facebook = in.Facebook
	}
	if in.LinkedIn != "" {
		p.Social.LinkedIn = in.LinkedIn
	}
	if in.Instagram != "" {
		p.Social.Instagram = in.Instagram
	}
}

func splitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		if skill := strings.TrimSpace(part); skill != "" {
			skills = append(skills, skill)
		}
	}
	return skills
}

func upsertAction(created bool) string {
	if created {
		return "created"
	}
	return "updated"
}

// newEntryID returns a unique 24-character hex id for embedded sub-entries
// (experience, education, comments).
func newEntryID() string {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		// fallback: derive from the current nanosecond clock
		return fmt.Sprintf("%024x", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
