package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devconnector/devconnector-api/internal/core/ports"
)

// ProfileHandler handles HTTP requests for profile aggregates.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Me handles GET /api/profile/me — the authenticated user's own profile.
//
// @Summary      Get own profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileViewResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/profile/me [get]
func (h *ProfileHandler) Me(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	view, err := h.service.GetByUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProfileViewResponse(view))
}

// List handles GET /api/profile — every profile, public projection.
//
// @Summary      List all profiles
// @Tags         profile
// @Produce      json
// @Success      200  {object}  listProfilesResponse
// @Router       /api/profile [get]
func (h *ProfileHandler) List(c echo.Context) error {
	views, err := h.service.ListProfiles(c.Request().Context())
	if err != nil {
		return err
	}

	profiles := make([]profileViewResponse, 0, len(views))
	for _, v := range views {
		profiles = append(profiles, toProfileViewResponse(v))
	}

	return c.JSON(http.StatusOK, listProfilesResponse{Count: len(profiles), Profiles: profiles})
}

// GetByUserID handles GET /api/profile/user/:user_id — public lookup.
//
// @Summary      Get a profile by user id
// @Tags         profile
// @Produce      json
// @Param        user_id  path      string  true  "User id"
// @Success      200      {object}  profileViewResponse
// @Failure      400      {object}  map[string]string
// @Router       /api/profile/user/{user_id} [get]
func (h *ProfileHandler) GetByUserID(c echo.Context) error {
	view, err := h.service.GetByUser(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProfileViewResponse(view))
}

// Upsert handles POST /api/profile — create-if-absent, else merge-update.
//
// @Summary      Create or update own profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      upsertProfileRequest  true  "Profile fields"
// @Success      200   {object}  domain.Profile
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/profile [post]
func (h *ProfileHandler) Upsert(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req upsertProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.service.Upsert(c.Request().Context(), ports.UpsertProfileInput{
		UserID:         userID,
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Status:         req.Status,
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		Skills:         req.Skills,
		YouTube:        req.YouTube,
		Twitter:        req.Twitter,
		Facebook:       req.Facebook,
		LinkedIn:       req.LinkedIn,
		Instagram:      req.Instagram,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profile)
}

// AddExperience handles PUT /api/profile/experience.
//
// @Summary      Add a work-history entry
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      experienceRequest  true  "Experience entry"
// @Success      200   {object}  domain.Profile
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/profile/experience [put]
func (h *ProfileHandler) AddExperience(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req experienceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input, err := toExperienceInput(req)
	if err != nil {
		return err
	}

	profile, err := h.service.AddExperience(c.Request().Context(), userID, input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profile)
}

// RemoveExperience handles DELETE /api/profile/experience/:exp_id.
//
// @Summary      Remove a work-history entry
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Param        exp_id  path      string  true  "Experience entry id"
// @Success      200     {object}  domain.Profile
// @Failure      401     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /api/profile/experience/{exp_id} [delete]
func (h *ProfileHandler) RemoveExperience(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	profile, err := h.service.RemoveExperience(c.Request().Context(), userID, c.Param("exp_id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profile)
}

// AddEducation handles PUT /api/profile/education.
//
// @Summary      Add an education entry
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      educationRequest  true  "Education entry"
// @Success      200   {object}  domain.Profile
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/profile/education [put]
func (h *ProfileHandler) AddEducation(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req educationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input, err := toEducationInput(req)
	if err != nil {
		return err
	}

	profile, err := h.service.AddEducation(c.Request().Context(), userID, input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profile)
}

// RemoveEducation handles DELETE /api/profile/education/:edu_id.
//
// @Summary      Remove an education entry
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Param        edu_id  path      string  true  "Education entry id"
// @Success      200     {object}  domain.Profile
// @Failure      401     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /api/profile/education/{edu_id} [delete]
func (h *ProfileHandler) RemoveEducation(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	profile, err := h.service.RemoveEducation(c.Request().Context(), userID, c.Param("edu_id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profile)
}

// DeleteAccount handles DELETE /api/profile — removes profile and user.
// Posts authored by the user are not removed.
//
// @Summary      Delete own account
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/profile [delete]
func (h *ProfileHandler) DeleteAccount(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteAccount(c.Request().Context(), userID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Msg: "user deleted"})
}

// GithubRepos handles GET /api/profile/github/:username.
//
// @Summary      Get a user's latest public GitHub repositories
// @Tags         profile
// @Produce      json
// @Param        username  path      string  true  "GitHub username"
// @Success      200       {array}   githubRepoResponse
// @Failure      404       {object}  map[string]string
// @Router       /api/profile/github/{username} [get]
func (h *ProfileHandler) GithubRepos(c echo.Context) error {
	repos, err := h.service.GithubRepos(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toGithubRepoResponses(repos))
}
