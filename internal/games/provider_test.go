package games_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/keep-objectives/internal/entities/objective"
	"github.com/KirkDiggler/keep-objectives/internal/entities/option"
	"github.com/KirkDiggler/keep-objectives/internal/errors"
	"github.com/KirkDiggler/keep-objectives/internal/games"
)

const (
	optArcade   = "test_game_include_arcade_mode"
	optSections = "test_game_career_sections"
)

type ProviderTestSuite struct {
	suite.Suite
	title *games.Title
}

func TestProviderSuite(t *testing.T) {
	suite.Run(t, new(ProviderTestSuite))
}

func (s *ProviderTestSuite) SetupTest() {
	tracks := games.List("tracks", "High Speed Ring", "Deep Forest")
	licences := games.List("licences", games.LicenceTests(2, "B", "A")...)
	missions := games.OptionalList("missions")

	s.title = &games.Title{
		ID:       "test_game",
		Name:     "Test Game",
		Platform: games.PlatformPS1,
		Definitions: []option.Definition{
			option.Toggle(optArcade, "Include Arcade Mode", "", true),
			option.Set(optSections, "Sections", "", "Licenses", "Missions"),
		},
		Categories: []games.CategorySpec{
			{
				Name:     "Arcade Mode",
				Requires: []games.Requirement{games.Requires(optArcade)},
				Build: func() []objective.Template {
					return []objective.Template{{
						Label:  "Win the race at TRACK in Arcade Mode!",
						Data:   map[string]objective.Binding{objective.TokenTrack: objective.Bind(tracks)},
						Weight: objective.DefaultWeight,
					}}
				},
			},
			{
				Name:     "Licenses",
				Requires: []games.Requirement{games.RequiresMember(optSections, "Licenses")},
				Build: func() []objective.Template {
					return []objective.Template{{
						Label:  "Beat the target time in licence test LICENCE!",
						Data:   map[string]objective.Binding{objective.TokenLicence: objective.Bind(licences)},
						Weight: objective.DefaultWeight,
					}}
				},
			},
			{
				Name:     "Missions",
				Requires: []games.Requirement{games.RequiresMember(optSections, "Missions")},
				Build: func() []objective.Template {
					return []objective.Template{{
						Label:  "Beat Mission MISSION!",
						Data:   map[string]objective.Binding{objective.TokenMission: objective.Bind(missions)},
						Weight: objective.DefaultWeight,
					}}
				},
			},
		},
	}
}

func (s *ProviderTestSuite) newProvider(raw map[string]any) games.Provider {
	settings, _, err := option.Resolve(s.title.Definitions, raw)
	s.Require().NoError(err)

	provider, err := games.NewProvider(&games.ProviderConfig{Title: s.title, Settings: settings})
	s.Require().NoError(err)
	return provider
}

func (s *ProviderTestSuite) labels(templates []objective.Template) []string {
	var out []string
	for _, t := range templates {
		out = append(out, t.Label)
	}
	return out
}

func (s *ProviderTestSuite) TestIdentity() {
	provider := s.newProvider(nil)

	s.Equal("test_game", provider.GetID())
	s.Equal(games.EntityType, provider.GetType())
	s.Equal("Test Game", provider.Name())
	s.Equal(games.PlatformPS1, provider.Platform())
	s.False(provider.IsAdultOnlyOrUnrated())
}

func (s *ProviderTestSuite) TestListEnabledObjectiveTemplates() {
	testCases := []struct {
		name     string
		raw      map[string]any
		expected []string
	}{
		{
			name: "defaults enable everything with content",
			raw:  nil,
			expected: []string{
				"Win the race at TRACK in Arcade Mode!",
				"Beat the target time in licence test LICENCE!",
			},
		},
		{
			name:     "toggle off removes its category",
			raw:      map[string]any{optArcade: false},
			expected: []string{"Beat the target time in licence test LICENCE!"},
		},
		{
			name:     "empty set leaves only toggled categories",
			raw:      map[string]any{optSections: []any{}},
			expected: []string{"Win the race at TRACK in Arcade Mode!"},
		},
		{
			name:     "unknown member fails closed",
			raw:      map[string]any{optArcade: false, optSections: []any{"Licences"}},
			expected: nil,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			provider := s.newProvider(tc.raw)
			s.Equal(tc.expected, s.labels(provider.ListEnabledObjectiveTemplates()))
		})
	}
}

func (s *ProviderTestSuite) TestEmptyListIsNotNil() {
	provider := s.newProvider(map[string]any{optArcade: false, optSections: []any{}})

	templates := provider.ListEnabledObjectiveTemplates()
	s.NotNil(templates)
	s.Empty(templates)
	s.NotNil(provider.ListOptionalConstraints())
}

func (s *ProviderTestSuite) TestEmptySourceContributesNothing() {
	provider := s.newProvider(map[string]any{optSections: []any{"Missions"}})

	for _, c := range provider.Categories() {
		if c.Name() != "Missions" {
			continue
		}
		s.True(c.Enabled())
		s.Empty(c.Build())
		s.Empty(c.Templates())
	}
}

func (s *ProviderTestSuite) TestCategoriesBuildIndependently() {
	provider := s.newProvider(map[string]any{optArcade: false})

	categories := provider.Categories()
	s.Require().Len(categories, 3)

	arcade := categories[0]
	s.Equal("Arcade Mode", arcade.Name())
	s.False(arcade.Enabled())
	s.Empty(arcade.Templates())
	s.Len(arcade.Build(), 1)
	s.Equal([]games.Requirement{games.Requires(optArcade)}, arcade.Requirements())
}

func (s *ProviderTestSuite) TestIdempotent() {
	provider := s.newProvider(nil)

	first := objective.Describe(provider.ListEnabledObjectiveTemplates())
	second := objective.Describe(provider.ListEnabledObjectiveTemplates())
	s.Empty(cmp.Diff(first, second))
}

func (s *ProviderTestSuite) TestNewProviderValidation() {
	_, err := games.NewProvider(&games.ProviderConfig{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "Title: is required")
	s.Contains(err.Error(), "Settings: is required")

	_, err = games.NewProvider(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ProviderTestSuite) TestTitleValidate() {
	testCases := []struct {
		name   string
		mutate func(*games.Title)
		errMsg string
	}{
		{
			name:   "valid",
			mutate: func(*games.Title) {},
		},
		{
			name: "unknown option",
			mutate: func(t *games.Title) {
				t.Categories[0].Requires = []games.Requirement{games.Requires("test_game_nope")}
			},
			errMsg: "requires unknown option test_game_nope",
		},
		{
			name: "member outside domain",
			mutate: func(t *games.Title) {
				t.Categories[1].Requires = []games.Requirement{games.RequiresMember(optSections, "Licences")}
			},
			errMsg: `requires "Licences" which is not a key of`,
		},
		{
			name: "set read as toggle",
			mutate: func(t *games.Title) {
				t.Categories[1].Requires = []games.Requirement{games.Requires(optSections)}
			},
			errMsg: "reads set option test_game_career_sections as a toggle",
		},
		{
			name: "duplicate category",
			mutate: func(t *games.Title) {
				t.Categories[1].Name = "Arcade Mode"
			},
			errMsg: "duplicate category Arcade Mode",
		},
		{
			name: "empty required source",
			mutate: func(t *games.Title) {
				t.Categories[0].Build = func() []objective.Template {
					return []objective.Template{{
						Label:  "Beat your rival at RALLY!",
						Data:   map[string]objective.Binding{objective.TokenRally: objective.Bind(games.List("rally_events"))},
						Weight: objective.DefaultWeight,
					}}
				}
			},
			errMsg: "category Arcade Mode binds empty source rally_events",
		},
		{
			name: "inverted range bound by a category",
			mutate: func(t *games.Title) {
				t.Categories[2].Build = func() []objective.Template {
					return []objective.Template{{
						Label:  "Beat Mission MISSION!",
						Data:   map[string]objective.Binding{objective.TokenMission: objective.Bind(games.IntRange("mission_numbers", 34, 25))},
						Weight: objective.DefaultWeight,
					}}
				}
			},
			errMsg: "category Missions binds empty source mission_numbers",
		},
		{
			name: "malformed template on an empty optional source",
			mutate: func(t *games.Title) {
				t.Categories[2].Build = func() []objective.Template {
					return []objective.Template{{
						Label:  "Beat Mission MISSION in the BOGUS!",
						Data:   map[string]objective.Binding{objective.TokenMission: objective.Bind(games.OptionalList("missions"))},
						Weight: objective.DefaultWeight,
					}}
				}
			},
			errMsg: "token BOGUS is not a reserved placeholder",
		},
		{
			name: "malformed template",
			mutate: func(t *games.Title) {
				t.Categories[0].Build = func() []objective.Template {
					return []objective.Template{{Label: "Win at TRACK!", Weight: objective.DefaultWeight}}
				}
			},
			errMsg: "token TRACK has no binding",
		},
		{
			name:   "missing id",
			mutate: func(t *games.Title) { t.ID = "" },
			errMsg: "id: is required",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			tc.mutate(s.title)

			err := s.title.Validate()
			if tc.errMsg == "" {
				s.NoError(err)
				return
			}
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.errMsg)
		})
	}
}
