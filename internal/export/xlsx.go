package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"turadmin/internal/models"
)

var headers = []string{
	"ID", "Reys", "Mijoz", "Mijoz yaqinlari", "Paket/Tarif", "Necha kunga",
	"Xona turi", "Transport", "Valyuta kursi", "Umumiy narxi", "To'lov",
	"Telefon raqamlar", "Kommentariya",
}

// AgreementsXLSX — выгрузка списка договоров в xlsx. Данные ровно те,
// что в таблице на экране; файл собирается в памяти и пишется в w.
func AgreementsXLSX(list []models.Agreement, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Agreements"
	f.SetSheetName("Sheet1", sheet)

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for row, a := range list {
		values := []any{
			a.ID, a.FlightDate, a.ClientName, a.ClientRelatives, a.TariffName,
			a.DurationOfStay, a.RoomType, a.Transportation, a.ExchangeRate,
			a.TotalPrice, a.PaymentPaid, strings.Join(a.PhoneNumbers, ", "),
			a.Comments,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return fmt.Errorf("data cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("write row %d: %w", row+1, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}
