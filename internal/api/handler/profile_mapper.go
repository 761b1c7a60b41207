package handler

import (
	"time"

	"github.com/devconnector/devconnector-api/internal/core/domain"
	"github.com/devconnector/devconnector-api/internal/core/ports"
)

// parseDate accepts the date formats the client sends: plain dates
// ("2006-01-02") or full RFC 3339 timestamps.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// parseOptionalDate parses s when non-empty; an empty string maps to nil
// (open-ended entry).
func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := parseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func toExperienceInput(req experienceRequest) (ports.ExperienceInput, error) {
	from, err := parseDate(req.From)
	if err != nil {
		return ports.ExperienceInput{}, domain.NewValidationError("from must be a valid date (YYYY-MM-DD)")
	}
	to, err := parseOptionalDate(req.To)
	if err != nil {
		return ports.ExperienceInput{}, domain.NewValidationError("to must be a valid date (YYYY-MM-DD)")
	}

	return ports.ExperienceInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        from,
		To:          to,
		Current:     req.Current,
		Description: req.Description,
	}, nil
}

func toEducationInput(req educationRequest) (ports.EducationInput, error) {
	from, err := parseDate(req.From)
	if err != nil {
		return ports.EducationInput{}, domain.NewValidationError("from must be a valid date (YYYY-MM-DD)")
	}
	to, err := parseOptionalDate(req.To)
	if err != nil {
		return ports.EducationInput{}, domain.NewValidationError("to must be a valid date (YYYY-MM-DD)")
	}

	return ports.EducationInput{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         from,
		To:           to,
		Current:      req.Current,
		Description:  req.Description,
	}, nil
}

func toProfileViewResponse(v *ports.ProfileView) profileViewResponse {
	return profileViewResponse{
		ID: v.Profile.ID,
		User: profileOwnerResponse{
			ID:     v.Profile.UserID,
			Name:   v.UserName,
			Avatar: v.UserAvatar,
		},
		Company:        v.Profile.Company,
		Website:        v.Profile.Website,
		Location:       v.Profile.Location,
		Status:         v.Profile.Status,
		Bio:            v.Profile.Bio,
		GithubUsername: v.Profile.GithubUsername,
		Skills:         v.Profile.Skills,
		Social:         v.Profile.Social,
		Experience:     v.Profile.Experience,
		Education:      v.Profile.Education,
		UpdatedAt:      v.Profile.UpdatedAt,
	}
}

func toGithubRepoResponses(repos []ports.GithubRepo) []githubRepoResponse {
	out := make([]githubRepoResponse, 0, len(repos))
	for _, r := range repos {
		out = append(out, githubRepoResponse{
			Name:        r.Name,
			HTMLURL:     r.HTMLURL,
			Description: r.Description,
			Stars:       r.Stars,
			Watchers:    r.Watchers,
			Forks:       r.Forks,
		})
	}
	return out
}
