package objectives_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/keep-objectives/internal/entities/objective"
	"github.com/KirkDiggler/keep-objectives/internal/errors"
	"github.com/KirkDiggler/keep-objectives/internal/games"
	"github.com/KirkDiggler/keep-objectives/internal/games/catalog"
	"github.com/KirkDiggler/keep-objectives/internal/games/granturismo4"
	objectives "github.com/KirkDiggler/keep-objectives/internal/orchestrators/objectives"
	"github.com/KirkDiggler/keep-objectives/internal/pkg/idgen"
	"github.com/KirkDiggler/keep-objectives/internal/repositories/profiles"
	profilesmock "github.com/KirkDiggler/keep-objectives/internal/repositories/profiles/mock"
	"github.com/KirkDiggler/keep-objectives/internal/testutils"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// lowRoller always rolls 1, so every draw takes the leading candidates.
type lowRoller struct{}

func (lowRoller) Roll(size int) (int, error) { return 1, nil }

func (lowRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = 1
	}
	return out, nil
}

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	repo     *profilesmock.MockRepository
	registry *games.Registry
	svc      objectives.Service
	ctx      context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = profilesmock.NewMockRepository(s.ctrl)

	registry, err := catalog.NewRegistry()
	s.Require().NoError(err)
	s.registry = registry

	svc, err := objectives.New(&objectives.Config{
		Registry:           registry,
		Roller:             lowRoller{},
		IDGenerator:        idgen.NewSequential("id"),
		ProfileIDGenerator: idgen.NewSequential("p"),
		ProfileRepo:        s.repo,
	})
	s.Require().NoError(err)
	s.svc = svc
	s.ctx = context.Background()
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) TestNewValidation() {
	_, err := objectives.New(&objectives.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "Registry: is required")

	_, err = objectives.New(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestListGames() {
	out, err := s.svc.ListGames(s.ctx, &objectives.ListGamesInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Games, 4)

	gt4 := out.Games[3]
	s.Equal(granturismo4.ID, gt4.ID)
	s.Equal("Gran Turismo 4", gt4.Name)
	s.Equal(games.PlatformPS2, gt4.Platform)
	s.Len(gt4.Options, 5)
}

func (s *OrchestratorTestSuite) TestListTemplates() {
	testCases := []struct {
		name      string
		values    map[string]any
		templates int
		warnings  int
		errCheck  func(error) bool
	}{
		{name: "defaults", values: nil, templates: 33},
		{name: "licences only", values: testutils.GT4LicencesOnly(), templates: 2},
		{name: "arcade only", values: testutils.GT4ArcadeOnly(), templates: 8},
		{
			name: "unknown members warn",
			values: map[string]any{
				granturismo4.OptionArcadeMode:     false,
				granturismo4.OptionCareerSections: []any{"Licences"},
			},
			templates: 0,
			warnings:  1,
		},
		{
			name:     "wrong type",
			values:   map[string]any{granturismo4.OptionArcadeMode: "true"},
			errCheck: errors.IsInvalidArgument,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.svc.ListTemplates(s.ctx, &objectives.ListTemplatesInput{
				GameID: granturismo4.ID,
				Values: tc.values,
			})
			if tc.errCheck != nil {
				s.Require().Error(err)
				s.True(tc.errCheck(err))
				return
			}
			s.Require().NoError(err)
			s.Len(out.Templates, tc.templates)
			s.Len(out.Warnings, tc.warnings)
			s.Len(out.Categories, 16)
		})
	}
}

func (s *OrchestratorTestSuite) TestListTemplatesCategoryBreakdown() {
	out, err := s.svc.ListTemplates(s.ctx, &objectives.ListTemplatesInput{
		GameID: granturismo4.ID,
		Values: testutils.GT4LicencesOnly(),
	})
	s.Require().NoError(err)

	for _, c := range out.Categories {
		if c.Name == granturismo4.SectionLicenses {
			s.True(c.Enabled)
			s.Equal(2, c.Templates)
			continue
		}
		s.False(c.Enabled, c.Name)
		s.Zero(c.Templates, c.Name)
	}
	s.Equal([]string{granturismo4.SectionLicenses}, out.Settings[granturismo4.OptionCareerSections])
}

func (s *OrchestratorTestSuite) TestListTemplatesUnknownGame() {
	_, err := s.svc.ListTemplates(s.ctx, &objectives.ListTemplatesInput{GameID: "gran_turismo_7"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))

	_, err = s.svc.ListTemplates(s.ctx, &objectives.ListTemplatesInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestListTemplatesWithProfile() {
	s.repo.EXPECT().
		Get(s.ctx, profiles.GetInput{ID: "p1"}).
		Return(&profiles.GetOutput{Profile: &profiles.Profile{
			ID:     "p1",
			GameID: granturismo4.ID,
			Values: testutils.GT4LicencesOnly(),
		}}, nil).
		Times(2)

	out, err := s.svc.ListTemplates(s.ctx, &objectives.ListTemplatesInput{
		GameID:    granturismo4.ID,
		ProfileID: "p1",
	})
	s.Require().NoError(err)
	s.Len(out.Templates, 2)

	// Explicit values win over the profile.
	out, err = s.svc.ListTemplates(s.ctx, &objectives.ListTemplatesInput{
		GameID:    granturismo4.ID,
		ProfileID: "p1",
		Values:    map[string]any{granturismo4.OptionArcadeMode: true},
	})
	s.Require().NoError(err)
	s.Len(out.Templates, 10)
}

func (s *OrchestratorTestSuite) TestListTemplatesProfileErrors() {
	s.Run("profile of another game", func() {
		s.repo.EXPECT().
			Get(s.ctx, profiles.GetInput{ID: "gt3"}).
			Return(&profiles.GetOutput{Profile: &profiles.Profile{
				ID: "gt3", GameID: "gran_turismo_3", Values: map[string]any{},
			}}, nil)

		_, err := s.svc.ListTemplates(s.ctx, &objectives.ListTemplatesInput{
			GameID:    granturismo4.ID,
			ProfileID: "gt3",
		})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("missing profile", func() {
		s.repo.EXPECT().
			Get(s.ctx, profiles.GetInput{ID: "gone"}).
			Return(nil, errors.NotFound("profile gone not found"))

		_, err := s.svc.ListTemplates(s.ctx, &objectives.ListTemplatesInput{
			GameID:    granturismo4.ID,
			ProfileID: "gone",
		})
		s.True(errors.IsNotFound(err))
	})
}

func (s *OrchestratorTestSuite) TestResolveTemplate() {
	templates, err := s.svc.ListTemplates(s.ctx, &objectives.ListTemplatesInput{
		GameID: granturismo4.ID,
		Values: map[string]any{
			granturismo4.OptionArcadeMode:     false,
			granturismo4.OptionCareerSections: []any{granturismo4.SectionSpecialConditions},
		},
	})
	s.Require().NoError(err)
	s.Require().Len(templates.Templates, 1)

	out, err := s.svc.ResolveTemplate(s.ctx, &objectives.ResolveTemplateInput{
		GameID:   granturismo4.ID,
		Template: templates.Templates[0],
	})
	s.Require().NoError(err)

	obj := out.Objective
	s.Equal("id_1", obj.ID)
	s.Equal(granturismo4.ID, obj.GameID)
	s.Equal("Win the LEVEL RACE!", obj.Label)
	s.Equal("Win the Easy Capri Rally Race 1!", obj.Text)
	s.Equal([]string{"Easy"}, obj.Picks[objective.TokenLevel])
	s.Equal(objective.DefaultWeight, obj.Weight)
}

func (s *OrchestratorTestSuite) TestResolveTemplateInsufficientCandidates() {
	tmpl := objective.Template{
		Label: "Win the race at TRACK!",
		Data: map[string]objective.Binding{
			objective.TokenTrack: {Source: games.List("tracks", "Deep Forest"), Count: 2},
		},
		Weight: objective.DefaultWeight,
	}

	_, err := s.svc.ResolveTemplate(s.ctx, &objectives.ResolveTemplateInput{
		GameID:   granturismo4.ID,
		Template: tmpl,
	})
	s.Require().Error(err)
	s.True(objective.IsInsufficientCandidates(err))
	s.Equal(1, errors.GetMeta(err)["available"])
}

func (s *OrchestratorTestSuite) TestResolveAll() {
	out, err := s.svc.ResolveAll(s.ctx, &objectives.ResolveAllInput{GameID: granturismo4.ID})
	s.Require().NoError(err)
	s.Require().Len(out.Objectives, 33)

	listed, err := s.svc.ListTemplates(s.ctx, &objectives.ListTemplatesInput{GameID: granturismo4.ID})
	s.Require().NoError(err)

	ids := make(map[string]bool)
	for i, obj := range out.Objectives {
		s.Require().NotNil(obj)
		s.Equal(listed.Templates[i].Label, obj.Label)
		s.NotContains(obj.Text, "TRACK")
		ids[obj.ID] = true
	}
	s.Len(ids, 33)
}

func (s *OrchestratorTestSuite) TestResolveAllCanceled() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.svc.ResolveAll(ctx, &objectives.ResolveAllInput{GameID: granturismo4.ID})
	s.Require().Error(err)
	s.True(errors.IsCanceled(err))
}

func (s *OrchestratorTestSuite) TestSaveProfileCreates() {
	s.repo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input profiles.CreateInput) (*profiles.CreateOutput, error) {
			s.Equal("p_1", input.Profile.ID)
			s.Equal(granturismo4.ID, input.Profile.GameID)
			// Only validated members are stored, in declaration order.
			s.Equal([]string{granturismo4.SectionLicenses, granturismo4.SectionDrivingMissions},
				input.Profile.Values[granturismo4.OptionCareerSections])
			s.Equal(true, input.Profile.Values[granturismo4.OptionArcadeMode])
			return &profiles.CreateOutput{Profile: input.Profile}, nil
		})

	out, err := s.svc.SaveProfile(s.ctx, &objectives.SaveProfileInput{
		GameID: granturismo4.ID,
		Name:   "missions",
		Values: map[string]any{
			granturismo4.OptionCareerSections: []any{
				granturismo4.SectionDrivingMissions, "Licences", granturismo4.SectionLicenses,
			},
		},
	})
	s.Require().NoError(err)
	s.Equal("p_1", out.Profile.ID)
	s.Require().Len(out.Warnings, 1)
	s.Equal("Licences", out.Warnings[0].Member)
}

func (s *OrchestratorTestSuite) TestSaveProfileUpdates() {
	s.repo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input profiles.UpdateInput) (*profiles.UpdateOutput, error) {
			s.Equal("p1", input.Profile.ID)
			return &profiles.UpdateOutput{Profile: input.Profile}, nil
		})

	out, err := s.svc.SaveProfile(s.ctx, &objectives.SaveProfileInput{
		ID:     "p1",
		GameID: granturismo4.ID,
	})
	s.Require().NoError(err)
	s.Equal("p1", out.Profile.ID)
}

func (s *OrchestratorTestSuite) TestSaveProfileRejectsBadValues() {
	_, err := s.svc.SaveProfile(s.ctx, &objectives.SaveProfileInput{
		GameID: granturismo4.ID,
		Values: map[string]any{granturismo4.OptionCareerSections: "Licenses"},
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.svc.SaveProfile(s.ctx, &objectives.SaveProfileInput{GameID: "nope"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestGetAndDeleteProfile() {
	s.repo.EXPECT().
		Get(s.ctx, profiles.GetInput{ID: "p1"}).
		Return(&profiles.GetOutput{Profile: &profiles.Profile{ID: "p1", GameID: granturismo4.ID}}, nil)
	s.repo.EXPECT().
		Delete(s.ctx, profiles.DeleteInput{ID: "p1"}).
		Return(&profiles.DeleteOutput{}, nil)
	s.repo.EXPECT().
		Delete(s.ctx, profiles.DeleteInput{ID: "p2"}).
		Return(nil, errors.NotFound("profile p2 not found"))

	got, err := s.svc.GetProfile(s.ctx, &objectives.GetProfileInput{ID: "p1"})
	s.Require().NoError(err)
	s.Equal("p1", got.Profile.ID)

	_, err = s.svc.DeleteProfile(s.ctx, &objectives.DeleteProfileInput{ID: "p1"})
	s.NoError(err)

	_, err = s.svc.DeleteProfile(s.ctx, &objectives.DeleteProfileInput{ID: "p2"})
	s.True(errors.IsNotFound(err))

	_, err = s.svc.GetProfile(s.ctx, &objectives.GetProfileInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestListProfiles() {
	s.repo.EXPECT().
		ListByGame(s.ctx, profiles.ListByGameInput{GameID: granturismo4.ID}).
		Return(&profiles.ListByGameOutput{Profiles: []*profiles.Profile{{ID: "p1"}}}, nil)

	out, err := s.svc.ListProfiles(s.ctx, &objectives.ListProfilesInput{GameID: granturismo4.ID})
	s.Require().NoError(err)
	s.Len(out.Profiles, 1)
}

func (s *OrchestratorTestSuite) TestProfilesNeedStorage() {
	svc, err := objectives.New(&objectives.Config{Registry: s.registry})
	s.Require().NoError(err)

	_, err = svc.SaveProfile(s.ctx, &objectives.SaveProfileInput{GameID: granturismo4.ID})
	s.True(errors.IsFailedPrecondition(err))

	_, err = svc.GetProfile(s.ctx, &objectives.GetProfileInput{ID: "p1"})
	s.True(errors.IsFailedPrecondition(err))

	_, err = svc.DeleteProfile(s.ctx, &objectives.DeleteProfileInput{ID: "p1"})
	s.True(errors.IsFailedPrecondition(err))

	_, err = svc.ListProfiles(s.ctx, &objectives.ListProfilesInput{GameID: granturismo4.ID})
	s.True(errors.IsFailedPrecondition(err))

	_, err = svc.ListTemplates(s.ctx, &objectives.ListTemplatesInput{GameID: granturismo4.ID, ProfileID: "p1"})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestProfileRoundTripInMemory() {
	svc, err := objectives.New(&objectives.Config{
		Registry:    s.registry,
		Roller:      lowRoller{},
		ProfileRepo: profiles.NewInMemory(nil),
	})
	s.Require().NoError(err)

	saved, err := svc.SaveProfile(s.ctx, &objectives.SaveProfileInput{
		GameID: granturismo4.ID,
		Name:   "licences",
		Values: testutils.GT4LicencesOnly(),
	})
	s.Require().NoError(err)
	s.Contains(saved.Profile.ID, "profile_")

	out, err := svc.ResolveAll(s.ctx, &objectives.ResolveAllInput{
		GameID:    granturismo4.ID,
		ProfileID: saved.Profile.ID,
	})
	s.Require().NoError(err)
	s.Len(out.Objectives, 2)
	for _, obj := range out.Objectives {
		s.Contains(obj.ID, "obj_")
	}

	listed, err := svc.ListProfiles(s.ctx, &objectives.ListProfilesInput{GameID: granturismo4.ID})
	s.Require().NoError(err)
	s.Require().Len(listed.Profiles, 1)
	s.Equal("licences", listed.Profiles[0].Name)
}

func (s *OrchestratorTestSuite) TestObjectiveIDGeneratorDoesNotIssueProfileIDs() {
	svc, err := objectives.New(&objectives.Config{
		Registry:    s.registry,
		Roller:      lowRoller{},
		IDGenerator: idgen.NewSequential("id"),
		ProfileRepo: profiles.NewInMemory(nil),
	})
	s.Require().NoError(err)

	saved, err := svc.SaveProfile(s.ctx, &objectives.SaveProfileInput{
		GameID: granturismo4.ID,
		Values: testutils.GT4LicencesOnly(),
	})
	s.Require().NoError(err)
	s.Contains(saved.Profile.ID, "profile_")

	out, err := svc.ResolveAll(s.ctx, &objectives.ResolveAllInput{
		GameID:    granturismo4.ID,
		ProfileID: saved.Profile.ID,
	})
	s.Require().NoError(err)
	s.Require().Len(out.Objectives, 2)
	s.ElementsMatch([]string{"id_1", "id_2"},
		[]string{out.Objectives[0].ID, out.Objectives[1].ID})
}
