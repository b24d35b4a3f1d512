package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"turadmin/internal/models"
)

func TestAgreementsXLSX(t *testing.T) {
	list := []models.Agreement{
		{
			ID: 1, FlightDate: "2025-03-01", ClientName: "Aliyev",
			TariffName: "Standart", DurationOfStay: 7, RoomType: models.RoomDouble,
			Transportation: "Avia", ExchangeRate: 12950, TotalPrice: 1500.5,
			PaymentPaid: 700, PhoneNumbers: []string{"+99890", "+99891"},
		},
		{ID: 2, ClientName: "Karimov"},
	}

	var buf bytes.Buffer
	require.NoError(t, AgreementsXLSX(list, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Agreements")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Mijoz", rows[0][2])
	assert.Equal(t, "Aliyev", rows[1][2])
	assert.Equal(t, "+99890, +99891", rows[1][11])
	assert.Equal(t, "Karimov", rows[2][2])
}

func TestAgreementsXLSXEmptyList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, AgreementsXLSX(nil, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Agreements")
	require.NoError(t, err)
	require.Len(t, rows, 1, "header only")
}
