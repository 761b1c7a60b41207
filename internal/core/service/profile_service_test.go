package service

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/devconnector/devconnector-api/internal/core/domain"
	"github.com/devconnector/devconnector-api/internal/core/ports"
)

func newProfileService(profiles *stubProfileRepo, users *stubUserRepo) *ProfileService {
	return NewProfileService(profiles, users, &stubGithubClient{}, discardLogger)
}

func minimalProfileInput(userID string) ports.UpsertProfileInput {
	return ports.UpsertProfileInput{
		UserID: userID,
		Status: "Developer",
		Skills: "go, mongo",
	}
}

func experienceInput() ports.ExperienceInput {
	return ports.ExperienceInput{
		Title:   "Backend Engineer",
		Company: "Acme",
		From:    time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func educationInput() ports.EducationInput {
	return ports.EducationInput{
		School:       "State University",
		Degree:       "BSc",
		FieldOfStudy: "Computer Science",
		From:         time.Date(2015, 9, 1, 0, 0, 0, 0, time.UTC),
	}
}

// ---------------------------------------------------------------------------
// Upsert
// ---------------------------------------------------------------------------

func TestProfileService_Upsert_CreatesOnFirstUse(t *testing.T) {
	profiles := newStubProfileRepo()
	users := newStubUserRepo()
	users.seedUser("user_1", "John", "john@example.com", "")
	svc := newProfileService(profiles, users)

	p, err := svc.Upsert(context.Background(), minimalProfileInput("user_1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.ID == "" {
		t.Error("expected the stored profile to carry an id")
	}
	if p.Status != "Developer" {
		t.Errorf("expected status Developer, got %q", p.Status)
	}
	if !reflect.DeepEqual(p.Skills, []string{"go", "mongo"}) {
		t.Errorf("skills not normalized: %v", p.Skills)
	}
	if p.Experience == nil || p.Education == nil {
		t.Error("sub-lists must be initialized, not nil")
	}
	if p.UpdatedAt.IsZero() {
		t.Error("UpdatedAt must not be zero")
	}
}

func TestProfileService_Upsert_SkillsNormalization(t *testing.T) {
	profiles := newStubProfileRepo()
	users := newStubUserRepo()
	svc := newProfileService(profiles, users)

	in := minimalProfileInput("user_1")
	in.Skills = " node,  react , , mongo ,"

	p, err := svc.Upsert(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(p.Skills, []string{"node", "react", "mongo"}) {
		t.Errorf("skills not normalized: %v", p.Skills)
	}
}

func TestProfileService_Upsert_MergeRetainsUnsetFields(t *testing.T) {
	profiles := newStubProfileRepo()
	users := newStubUserRepo()
	svc := newProfileService(profiles, users)

	first := minimalProfileInput("user_1")
	first.Company = "Acme"
	first.Twitter = "https://twitter.com/john"
	if _, err := svc.Upsert(context.Background(), first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Second upsert leaves Company and Twitter empty; both must survive
	second := minimalProfileInput("user_1")
	second.Location = "Berlin"
	p, err := svc.Upsert(context.Background(), second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.Company != "Acme" {
		t.Errorf("expected company retained, got %q", p.Company)
	}
	if p.Social.Twitter != "https://twitter.com/john" {
		t.Errorf("expected twitter retained, got %q", p.Social.Twitter)
	}
	if p.Location != "Berlin" {
		t.Errorf("expected location applied, got %q", p.Location)
	}
}

func TestProfileService_Upsert_OneProfilePerUser(t *testing.T) {
	profiles := newStubProfileRepo()
	users := newStubUserRepo()
	svc := newProfileService(profiles, users)

	if _, err := svc.Upsert(context.Background(), minimalProfileInput("user_1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Upsert(context.Background(), minimalProfileInput("user_1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all, err := profiles.FindAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected 1 stored profile, got %d", len(all))
	}
}

func TestProfileService_Upsert_Validation(t *testing.T) {
	profiles := newStubProfileRepo()
	users := newStubUserRepo()
	svc := newProfileService(profiles, users)

	_, err := svc.Upsert(context.Background(), ports.UpsertProfileInput{UserID: "user_1"})

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !reflect.DeepEqual(verr.Messages, []string{"status is required", "skills is required"}) {
		t.Errorf("unexpected messages: %v", verr.Messages)
	}
}

func TestProfileService_Upsert_RepoError(t *testing.T) {
	profiles := newStubProfileRepo()
	profiles.byUser["user_1"] = &domain.Profile{ID: "profile_user_1", UserID: "user_1", Status: "Dev"}
	profiles.updateErr = errors.New("connection reset")
	users := newStubUserRepo()
	svc := newProfileService(profiles, users)

	if _, err := svc.Upsert(context.Background(), minimalProfileInput("user_1")); err == nil {
		t.Fatal("expected error from repository")
	}
}

// ---------------------------------------------------------------------------
// GetByUser / ListProfiles
// ---------------------------------------------------------------------------

func TestProfileService_GetByUser_JoinsOwner(t *testing.T) {
	profiles := newStubProfileRepo()
	users := newStubUserRepo()
	users.seedUser("user_1", "John", "john@example.com", "https://example.com/a.png")
	svc := newProfileService(profiles, users)

	if _, err := svc.Upsert(context.Background(), minimalProfileInput("user_1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	view, err := svc.GetByUser(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.UserName != "John" {
		t.Errorf("expected owner name joined, got %q", view.UserName)
	}
	if view.UserAvatar != "https://example.com/a.png" {
		t.Errorf("expected owner avatar joined, got %q", view.UserAvatar)
	}
	if view.Profile.Status != "Developer" {
		t.Errorf("expected profile fields, got %+v", view.Profile)
	}
}

func TestProfileService_GetByUser_NotFound(t *testing.T) {
	svc := newProfileService(newStubProfileRepo(), newStubUserRepo())

	_, err := svc.GetByUser(context.Background(), "user_1")
	if !errors.Is(err, domain.ErrProfileNotFound) {
		t.Errorf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestProfileService_GetByUser_OrphanedProfileDegrades(t *testing.T) {
	profiles := newStubProfileRepo()
	users := newStubUserRepo()
	svc := newProfileService(profiles, users)

	// Profile exists but its owner account does not
	if _, err := svc.Upsert(context.Background(), minimalProfileInput("user_1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	view, err := svc.GetByUser(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.UserName != "" || view.UserAvatar != "" {
		t.Errorf("expected unjoined view, got %+v", view)
	}
}

func TestProfileService_ListProfiles(t *testing.T) {
	profiles := newStubProfileRepo()
	users := newStubUserRepo()
	users.seedUser("user_1", "John", "john@example.com", "")
	users.seedUser("user_2", "Jane", "jane@example.com", "")
	svc := newProfileService(profiles, users)

	for _, id := range []string{"user_1", "user_2"} {
		if _, err := svc.Upsert(context.Background(), minimalProfileInput(id)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	views, err := svc.ListProfiles(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(views))
	}
	if views[0].UserName != "John" || views[1].UserName != "Jane" {
		t.Errorf("owner join wrong: %q, %q", views[0].UserName, views[1].UserName)
	}
}

// ---------------------------------------------------------------------------
// Experience / education sub-lists
// ---------------------------------------------------------------------------

func TestProfileService_AddExperience_InsertsAtHead(t *testing.T) {
	profiles := newStubProfileRepo()
	users := newStubUserRepo()
	svc := newProfileService(profiles, users)

	if _, err := svc.Upsert(context.Background(), minimalProfileInput("user_1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := experienceInput()
	if _, err := svc.AddExperience(context.Background(), "user_1", first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second := experienceInput()
	second.Title = "Staff Engineer"
	p, err := svc.AddExperience(context.Background(), "user_1", second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(p.Experience) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(p.Experience))
	}
	if p.Experience[0].Title != "Staff Engineer" {
		t.Errorf("expected newest entry first, got %q", p.Experience[0].Title)
	}
	if p.Experience[0].ID == "" || p.Experience[0].ID == p.Experience[1].ID {
		t.Errorf("entry ids must be unique and non-empty: %q, %q", p.Experience[0].ID, p.Experience[1].ID)
	}
}

func TestProfileService_AddExperience_Validation(t *testing.T) {
	svc := newProfileService(newStubProfileRepo(), newStubUserRepo())

	_, err := svc.AddExperience(context.Background(), "user_1", ports.ExperienceInput{})

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	want := []string{"title is required", "company is required", "from date is required"}
	if !reflect.DeepEqual(verr.Messages, want) {
		t.Errorf("unexpected messages: %v", verr.Messages)
	}
}

func TestProfileService_AddExperience_NoProfile(t *testing.T) {
	svc := newProfileService(newStubProfileRepo(), newStubUserRepo())

	_, err := svc.AddExperience(context.Background(), "user_1", experienceInput())
	if !errors.Is(err, domain.ErrProfileNotFound) {
		t.Errorf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestProfileService_RemoveExperience_RoundTrip(t *testing.T) {
	profiles := newStubProfileRepo()
	users := newStubUserRepo()
	svc := newProfileService(profiles, users)

	if _, err := svc.Upsert(context.Background(), minimalProfileInput("user_1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, err := svc.AddExperience(context.Background(), "user_1", experienceInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p, err = svc.RemoveExperience(context.Background(), "user_1", p.Experience[0].ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Experience) != 0 {
		t.Errorf("expected empty experience list, got %d entries", len(p.Experience))
	}

	stored, err := profiles.FindByUserID(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stored.Experience) != 0 {
		t.Errorf("removal not persisted: %d entries", len(stored.Experience))
	}
}

func TestProfileService_RemoveExperience_UnknownID(t *testing.T) {
	profiles := newStubProfileRepo()
	users := newStubUserRepo()
	svc := newProfileService(profiles, users)

	if _, err := svc.Upsert(context.Background(), minimalProfileInput("user_1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := svc.RemoveExperience(context.Background(), "user_1", "no-such-entry")
	if !errors.Is(err, domain.ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestProfileService_Education_AddAndRemove(t *testing.T) {
	profiles := newStubProfileRepo()
	users := newStubUserRepo()
	svc := newProfileService(profiles, users)

	if _, err := svc.Upsert(context.Background(), minimalProfileInput("user_1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p, err := svc.AddEducation(context.Background(), "user_1", educationInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Education) != 1 || p.Education[0].School != "State University" {
		t.Fatalf("education entry wrong: %+v", p.Education)
	}

	p, err = svc.RemoveEducation(context.Background(), "user_1", p.Education[0].ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Education) != 0 {
		t.Errorf("expected empty education list, got %d entries", len(p.Education))
	}

	if _, err := svc.RemoveEducation(context.Background(), "user_1", "gone"); !errors.Is(err, domain.ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestProfileService_AddEducation_Validation(t *testing.T) {
	svc := newProfileService(newStubProfileRepo(), newStubUserRepo())

	_, err := svc.AddEducation(context.Background(), "user_1", ports.EducationInput{School: "X"})

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	want := []string{"degree is required", "field of study is required", "from date is required"}
	if !reflect.DeepEqual(verr.Messages, want) {
		t.Errorf("unexpected messages: %v", verr.Messages)
	}
}

// ---------------------------------------------------------------------------
// DeleteAccount / GithubRepos
// ---------------------------------------------------------------------------

func TestProfileService_DeleteAccount_RemovesProfileAndUser(t *testing.T) {
	profiles := newStubProfileRepo()
	users := newStubUserRepo()
	users.seedUser("user_1", "John", "john@example.com", "")
	svc := newProfileService(profiles, users)

	if _, err := svc.Upsert(context.Background(), minimalProfileInput("user_1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.DeleteAccount(context.Background(), "user_1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := profiles.FindByUserID(context.Background(), "user_1"); !errors.Is(err, domain.ErrProfileNotFound) {
		t.Errorf("expected profile removed, got %v", err)
	}
	if _, err := users.FindByID(context.Background(), "user_1"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected user removed, got %v", err)
	}
}

func TestProfileService_DeleteAccount_NoProfile(t *testing.T) {
	profiles := newStubProfileRepo()
	users := newStubUserRepo()
	users.seedUser("user_1", "John", "john@example.com", "")
	svc := newProfileService(profiles, users)

	// Deleting an account that never created a profile still succeeds
	if err := svc.DeleteAccount(context.Background(), "user_1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := users.FindByID(context.Background(), "user_1"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected user removed, got %v", err)
	}
}

func TestProfileService_DeleteAccount_UserDeleteError(t *testing.T) {
	profiles := newStubProfileRepo()
	users := newStubUserRepo()
	users.deleteErr = errors.New("connection reset")
	svc := newProfileService(profiles, users)

	if err := svc.DeleteAccount(context.Background(), "user_1"); err == nil {
		t.Fatal("expected error from user delete")
	}
}

func TestProfileService_GithubRepos_Delegates(t *testing.T) {
	github := &stubGithubClient{repos: []ports.GithubRepo{{Name: "dotfiles", Stars: 3}}}
	svc := NewProfileService(newStubProfileRepo(), newStubUserRepo(), github, discardLogger)

	repos, err := svc.GithubRepos(context.Background(), "octocat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if github.lastArg != "octocat" {
		t.Errorf("expected username forwarded, got %q", github.lastArg)
	}
	if len(repos) != 1 || repos[0].Name != "dotfiles" {
		t.Errorf("unexpected repos: %+v", repos)
	}
}

func TestProfileService_GithubRepos_UserNotFound(t *testing.T) {
	github := &stubGithubClient{err: domain.ErrGithubUserNotFound}
	svc := NewProfileService(newStubProfileRepo(), newStubUserRepo(), github, discardLogger)

	_, err := svc.GithubRepos(context.Background(), "nobody")
	if !errors.Is(err, domain.ErrGithubUserNotFound) {
		t.Errorf("expected ErrGithubUserNotFound, got %v", err)
	}
}
