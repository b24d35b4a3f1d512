package forms

import (
	"context"
	"errors"

	"turadmin/internal/models"
)

// ErrSubmitFailed — единое сообщение о любой сетевой/серверной ошибке:
// детали в логах, форма остаётся редактируемой.
var ErrSubmitFailed = errors.New("failed to submit agreement, please try again")

// ValidationError — нарушение клиентской валидации, до сети не дошло.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// AgreementWriter — то, что формам нужно от API-клиента.
type AgreementWriter interface {
	CreateAgreement(ctx context.Context, token string, a models.Agreement) (*models.Agreement, error)
	UpdateAgreement(ctx context.Context, token string, id int, a models.Agreement) error
}

// CreateAgreementForm — режим создания: id не посылается, поле
// previous_agreement_taken_away отсутствует, после успеха форма
// сбрасывается в исходное состояние.
type CreateAgreementForm struct {
	*Form
	api AgreementWriter
}

func NewCreate(api AgreementWriter) *CreateAgreementForm {
	return &CreateAgreementForm{Form: New(), api: api}
}

func (f *CreateAgreementForm) Submit(ctx context.Context, token string) error {
	if msg := f.Validate(); msg != "" {
		return &ValidationError{Message: msg}
	}

	f.Submitting = true
	defer func() { f.Submitting = false }()

	if _, err := f.api.CreateAgreement(ctx, token, f.Payload()); err != nil {
		return ErrSubmitFailed
	}
	*f.Form = *New()
	return nil
}

// EditAgreementForm — режим правки: PUT с полной заменой записи,
// состояние формы после успеха сохраняется.
type EditAgreementForm struct {
	*Form
	api AgreementWriter
	id  int
}

func NewEdit(api AgreementWriter, id int, current *models.Agreement) *EditAgreementForm {
	return &EditAgreementForm{Form: FromAgreement(current), api: api, id: id}
}

func (f *EditAgreementForm) Submit(ctx context.Context, token string) error {
	if msg := f.Validate(); msg != "" {
		return &ValidationError{Message: msg}
	}

	f.Submitting = true
	defer func() { f.Submitting = false }()

	payload := f.Payload()
	taken := f.PreviousAgreementTakenAway
	payload.PreviousAgreementTakenAway = &taken

	if err := f.api.UpdateAgreement(ctx, token, f.id, payload); err != nil {
		return ErrSubmitFailed
	}
	return nil
}
