package views

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/devpair/internal/client/models"
	"github.com/dmitrijs2005/devpair/internal/client/validation"
	"github.com/dmitrijs2005/devpair/internal/logging"
)

type PairingSessionsAPI interface {
	PairingSessions(ctx context.Context) ([]models.PairingSession, error)
	CreatePairingSession(ctx context.Context, in models.PairingSessionInput) (*models.PairingSession, error)
}

type PairingSessions struct {
	api PairingSessionsAPI
	log logging.Logger
	loader

	Items []models.PairingSession
}

func NewPairingSessions(api PairingSessionsAPI, log logging.Logger) *PairingSessions {
	return &PairingSessions{api: api, log: log.With("view", "pairing-sessions")}
}

func (v *PairingSessions) Load(ctx context.Context) error {
	defer v.begin()()

	items, err := v.api.PairingSessions(ctx)
	if err != nil {
		v.log.Warn(ctx, "pairing sessions load failed", "err", err)
		return err
	}
	v.Items = items
	return nil
}

func (v *PairingSessions) Create(ctx context.Context, form validation.PairingSessionForm) error {
	if err := validation.Validate(form); err != nil {
		return err
	}
	if _, err := v.api.CreatePairingSession(ctx, form.Input()); err != nil {
		return fmt.Errorf("create pairing session: %w", err)
	}
	_ = v.Load(ctx)
	return nil
}
