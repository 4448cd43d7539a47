package objectives

import (
	"context"

	"go.uber.org/zap"

	"github.com/KirkDiggler/keep-objectives/internal/entities/option"
	"github.com/KirkDiggler/keep-objectives/internal/errors"
	"github.com/KirkDiggler/keep-objectives/internal/repositories/profiles"
)

func (o *orchestrator) requireProfiles() error {
	if o.profileRepo == nil {
		return errors.FailedPrecondition("profile storage is not configured")
	}
	return nil
}

// SaveProfile stores only values that pass validation, so a saved profile
// never carries unknown keys or members.
func (o *orchestrator) SaveProfile(ctx context.Context, input *SaveProfileInput) (*SaveProfileOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := o.requireProfiles(); err != nil {
		return nil, err
	}

	title, err := o.registry.Get(input.GameID)
	if err != nil {
		return nil, err
	}

	settings, warnings, err := option.Resolve(title.Definitions, input.Values)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid options for %s", input.GameID)
	}

	profile := &profiles.Profile{
		ID:     input.ID,
		GameID: input.GameID,
		Name:   input.Name,
		Values: settings.Raw(),
	}

	var stored *profiles.Profile
	if profile.ID == "" {
		profile.ID = o.profileIDs.Generate()
		out, err := o.profileRepo.Create(ctx, profiles.CreateInput{Profile: profile})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create profile")
		}
		stored = out.Profile
	} else {
		out, err := o.profileRepo.Update(ctx, profiles.UpdateInput{Profile: profile})
		if err != nil {
			return nil, errors.Wrap(err, "failed to update profile")
		}
		stored = out.Profile
	}

	o.log.Info("saved profile",
		zap.String("profile_id", stored.ID),
		zap.String("game_id", stored.GameID),
		zap.Int("warnings", len(warnings)))

	return &SaveProfileOutput{Profile: stored, Warnings: warnings}, nil
}

func (o *orchestrator) GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("profile ID is required")
	}
	profile, err := o.loadProfile(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetProfileOutput{Profile: profile}, nil
}

func (o *orchestrator) DeleteProfile(ctx context.Context, input *DeleteProfileInput) (*DeleteProfileOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("profile ID is required")
	}
	if err := o.requireProfiles(); err != nil {
		return nil, err
	}

	if _, err := o.profileRepo.Delete(ctx, profiles.DeleteInput{ID: input.ID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete profile %s", input.ID)
	}

	o.log.Info("deleted profile", zap.String("profile_id", input.ID))
	return &DeleteProfileOutput{}, nil
}

func (o *orchestrator) ListProfiles(ctx context.Context, input *ListProfilesInput) (*ListProfilesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := o.requireProfiles(); err != nil {
		return nil, err
	}
	if _, err := o.registry.Get(input.GameID); err != nil {
		return nil, err
	}

	out, err := o.profileRepo.ListByGame(ctx, profiles.ListByGameInput{GameID: input.GameID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}
	return &ListProfilesOutput{Profiles: out.Profiles}, nil
}
