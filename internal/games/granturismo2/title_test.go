package granturismo2

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/keep-objectives/internal/entities/objective"
	"github.com/KirkDiggler/keep-objectives/internal/entities/option"
	"github.com/KirkDiggler/keep-objectives/internal/games"
)

type TitleTestSuite struct {
	suite.Suite
}

func TestTitleSuite(t *testing.T) {
	suite.Run(t, new(TitleTestSuite))
}

func (s *TitleTestSuite) templates(raw map[string]any) []objective.Template {
	title := Title()
	settings, _, err := option.Resolve(title.Definitions, raw)
	s.Require().NoError(err)

	p, err := games.NewProvider(&games.ProviderConfig{Title: title, Settings: settings})
	s.Require().NoError(err)
	return p.ListEnabledObjectiveTemplates()
}

func (s *TitleTestSuite) TestModesDefaultOff() {
	s.Empty(s.templates(nil))
}

func (s *TitleTestSuite) TestEverythingOn() {
	s.Len(s.templates(map[string]any{OptionArcadeMode: true, OptionCareerMode: true}), 22)
}

func (s *TitleTestSuite) TestEventGenerator() {
	templates := s.templates(map[string]any{
		OptionCareerMode:     true,
		OptionCareerSections: []any{SectionEventGenerator},
	})
	s.Require().Len(templates, 5)

	// The "or higher" objectives draw from the event generator's own ranks.
	s.Equal("event_synth_ranks", templates[0].Data[objective.TokenRank].Source.Name)
	s.Equal("event_synth_ranks", templates[1].Data[objective.TokenRank].Source.Name)

	last := templates[4]
	s.True(last.IsTimeConsuming)
	s.True(last.IsDifficult)
}

func (s *TitleTestSuite) TestDataTables() {
	s.Len(licenceTests.Values(), 54)
	s.Len(leagueRaces.Values(), 22)
	s.Len(specialRaces.Values(), 66)
	s.Len(dirtRaces.Values(), 21)
	s.Len(dirtHardRaces.Values(), 6)
	s.Equal(`Lightweight "K" Cup Race 1`, specialRaces.Values()[18])
}
