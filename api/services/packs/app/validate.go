package app

import (
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"github.com/tbeaudouin05/packchange/api/services/packs/model"
)

// structValidator checks boundary shapes (remote replies, return URLs).
var structValidator = validator.New()

// Validate runs the local guard before any remote round-trip. First failure wins.
func Validate(current, target model.Plan, id Identity) Validation {
	if id.UserID == "" {
		return Validation{Reason: ReasonMustAuthenticate}
	}
	if target.ID == "" {
		return Validation{Reason: ReasonInvalidTarget}
	}
	if current.ID != "" && current.ID == target.ID {
		return Validation{Reason: ReasonAlreadyOnPlan}
	}
	return Validation{Valid: true}
}

// validationError turns a failed Validation into a marked, hinted error.
func validationError(v Validation) error {
	msg, ok := reasonMessages[v.Reason]
	if !ok {
		msg = MsgChangeFailed
	}
	return fail(ErrValidation, errors.New(v.Reason), msg)
}
