package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/keep-objectives/internal/config"
	"github.com/KirkDiggler/keep-objectives/internal/errors"
)

const sampleConfig = `
log:
  mode: development
  level: debug
redis:
  addr: localhost:6379
  db: 2
  profile_ttl: 48h
games:
  gran_turismo_4:
    gran_turismo_4_include_arcade_mode: false
    gran_turismo_4_career_sections:
      - Licenses
      - Driving Missions
  gran_turismo:
    gran_turismo_include_career_mode: true
`

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *ConfigTestSuite) write(content string) string {
	path := filepath.Join(s.dir, "keep.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.Load("")
	s.Require().NoError(err)

	s.Equal("production", cfg.Log.Mode)
	s.Equal("info", cfg.Log.Level)
	s.False(cfg.Redis.Enabled())
	s.NotNil(cfg.Games)
	s.Empty(cfg.GameIDs())
}

func (s *ConfigTestSuite) TestLoadFile() {
	cfg, err := config.Load(s.write(sampleConfig))
	s.Require().NoError(err)

	s.Equal("development", cfg.Log.Mode)
	s.Equal("debug", cfg.Log.Level)
	s.Equal("localhost:6379", cfg.Redis.Addr)
	s.Equal(2, cfg.Redis.DB)
	s.Equal(48*time.Hour, cfg.Redis.ProfileTTL)
	s.True(cfg.Redis.Enabled())

	s.Equal([]string{"gran_turismo", "gran_turismo_4"}, cfg.GameIDs())

	values := cfg.GameValues("gran_turismo_4")
	s.Equal(false, values["gran_turismo_4_include_arcade_mode"])
	s.Equal([]any{"Licenses", "Driving Missions"}, values["gran_turismo_4_career_sections"])

	s.Nil(cfg.GameValues("gran_turismo_2"))
}

func (s *ConfigTestSuite) TestGameValuesIsACopy() {
	cfg, err := config.Load(s.write(sampleConfig))
	s.Require().NoError(err)

	values := cfg.GameValues("gran_turismo")
	values["gran_turismo_include_career_mode"] = false

	s.Equal(true, cfg.GameValues("gran_turismo")["gran_turismo_include_career_mode"])
}

func (s *ConfigTestSuite) TestEnvironmentOverrides() {
	s.T().Setenv("KEEP_LOG_MODE", "nop")
	s.T().Setenv("KEEP_REDIS_ADDR", "redis:6380")
	s.T().Setenv("KEEP_REDIS_PROFILE_TTL", "1h")

	cfg, err := config.Load(s.write(sampleConfig))
	s.Require().NoError(err)

	s.Equal("nop", cfg.Log.Mode)
	s.Equal("debug", cfg.Log.Level)
	s.Equal("redis:6380", cfg.Redis.Addr)
	s.Equal(time.Hour, cfg.Redis.ProfileTTL)
}

func (s *ConfigTestSuite) TestErrors() {
	testCases := []struct {
		name     string
		setup    func() string
		errCheck func(error) bool
		errMsg   string
	}{
		{
			name:     "missing file",
			setup:    func() string { return filepath.Join(s.dir, "absent.yaml") },
			errCheck: errors.IsNotFound,
			errMsg:   "not found",
		},
		{
			name:     "malformed yaml",
			setup:    func() string { return s.write("games: [unclosed") },
			errCheck: errors.IsInvalidArgument,
			errMsg:   "failed to parse config",
		},
		{
			name:     "unknown log mode",
			setup:    func() string { return s.write("log:\n  mode: verbose\n") },
			errCheck: errors.IsInvalidArgument,
			errMsg:   "log.mode: must be one of: production, development, nop",
		},
		{
			name: "bad environment value",
			setup: func() string {
				s.T().Setenv("KEEP_REDIS_DB", "two")
				return ""
			},
			errCheck: errors.IsInvalidArgument,
			errMsg:   "failed to parse environment",
		},
		{
			name:     "redis db out of range",
			setup:    func() string { return s.write("redis:\n  db: 16\n") },
			errCheck: errors.IsInvalidArgument,
			errMsg:   "redis.db: must be between 0 and 15",
		},
		{
			name:     "negative redis db",
			setup:    func() string { return s.write("redis:\n  db: -1\n") },
			errCheck: errors.IsInvalidArgument,
			errMsg:   "redis.db: must be between 0 and 15",
		},
		{
			name:     "negative ttl",
			setup:    func() string { return s.write("redis:\n  profile_ttl: -1h\n") },
			errCheck: errors.IsInvalidArgument,
			errMsg:   "redis.profile_ttl",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := config.Load(tc.setup())
			s.Require().Error(err)
			s.True(tc.errCheck(err), "unexpected code %s", errors.GetCode(err))
			s.Contains(err.Error(), tc.errMsg)
		})
	}
}
