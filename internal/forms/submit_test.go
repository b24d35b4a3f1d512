package forms

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turadmin/internal/models"
)

type fakeWriter struct {
	creates int
	updates int
	lastNew models.Agreement
	lastID  int
	err     error
}

func (w *fakeWriter) CreateAgreement(_ context.Context, _ string, a models.Agreement) (*models.Agreement, error) {
	w.creates++
	w.lastNew = a
	if w.err != nil {
		return nil, w.err
	}
	created := a
	created.ID = 101
	return &created, nil
}

func (w *fakeWriter) UpdateAgreement(_ context.Context, _ string, id int, a models.Agreement) error {
	w.updates++
	w.lastID = id
	w.lastNew = a
	return w.err
}

func fillValid(f *Form) {
	*f = *validForm()
}

func TestCreateSubmit(t *testing.T) {
	t.Run("valid form issues exactly one POST with coerced payload", func(t *testing.T) {
		w := &fakeWriter{}
		f := NewCreate(w)
		fillValid(f.Form)
		f.PhoneNumbers = []string{"+998901234567", "", " "}

		require.NoError(t, f.Submit(context.Background(), "tok"))

		assert.Equal(t, 1, w.creates)
		assert.Equal(t, []string{"+998901234567"}, w.lastNew.PhoneNumbers)
		assert.Equal(t, float64(12950), w.lastNew.ExchangeRate)
		assert.Equal(t, 1500.5, w.lastNew.TotalPrice)
		assert.Nil(t, w.lastNew.PreviousAgreementTakenAway, "create mode never sends the flag")
	})

	t.Run("validation failure aborts before any network call", func(t *testing.T) {
		w := &fakeWriter{}
		f := NewCreate(w)
		fillValid(f.Form)
		f.ClientName = ""

		err := f.Submit(context.Background(), "tok")

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Message, "client name")
		assert.Zero(t, w.creates)
	})

	t.Run("api failure is generic and leaves the form editable", func(t *testing.T) {
		w := &fakeWriter{err: errors.New("boom")}
		f := NewCreate(w)
		fillValid(f.Form)

		err := f.Submit(context.Background(), "tok")

		assert.ErrorIs(t, err, ErrSubmitFailed)
		assert.False(t, f.Submitting)
		assert.Equal(t, "Aliyev Alisher", f.ClientName, "state survives a failed submit")
	})

	t.Run("success resets create-mode state", func(t *testing.T) {
		w := &fakeWriter{}
		f := NewCreate(w)
		fillValid(f.Form)

		require.NoError(t, f.Submit(context.Background(), "tok"))

		assert.Empty(t, f.ClientName)
		assert.Equal(t, DefaultExchangeRate, f.ExchangeRate)
		assert.Equal(t, []string{""}, f.PhoneNumbers)
		assert.False(t, f.Submitting)
	})
}

func TestEditSubmit(t *testing.T) {
	respID := 3
	current := &models.Agreement{
		ID:                9,
		FlightDate:        "2025-03-01",
		DurationOfStay:    7,
		ClientName:        "Aliyev",
		TariffName:        "Standart",
		RoomType:          models.RoomDouble,
		Transportation:    "Avia",
		ExchangeRate:      12950,
		TotalPrice:        1500,
		PaymentPaid:       700,
		PhoneNumbers:      []string{"+998901234567"},
		ResponsibleUserID: &respID,
	}

	t.Run("puts full replacement with the taken-away flag", func(t *testing.T) {
		w := &fakeWriter{}
		f := NewEdit(w, 9, current)
		f.Apply(SetTakenAway{Value: true})

		require.NoError(t, f.Submit(context.Background(), "tok"))

		assert.Equal(t, 1, w.updates)
		assert.Equal(t, 9, w.lastID)
		require.NotNil(t, w.lastNew.PreviousAgreementTakenAway)
		assert.True(t, *w.lastNew.PreviousAgreementTakenAway)
	})

	t.Run("success keeps edit-mode state", func(t *testing.T) {
		w := &fakeWriter{}
		f := NewEdit(w, 9, current)

		require.NoError(t, f.Submit(context.Background(), "tok"))
		assert.Equal(t, "Aliyev", f.ClientName)
	})

	t.Run("validation blocks the PUT too", func(t *testing.T) {
		w := &fakeWriter{}
		f := NewEdit(w, 9, current)
		f.Apply(SetField{Name: "tariff_name", Value: ""})

		err := f.Submit(context.Background(), "tok")
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Zero(t, w.updates)
	})
}
