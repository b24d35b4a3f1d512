package pdf

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"turadmin/internal/format"
	"turadmin/internal/models"
)

// Generator — интерфейс (удобно мокать в тестах)
type Generator interface {
	RenderAgreement(a *models.Agreement, w io.Writer) error
}

// AgreementRenderer — печатная форма договора для выдачи клиенту.
// Узбекские подписи в латинице, поэтому хватает встроенного шрифта.
type AgreementRenderer struct {
	fontName string
}

func NewAgreementRenderer() *AgreementRenderer {
	return &AgreementRenderer{fontName: "Helvetica"}
}

func (g *AgreementRenderer) RenderAgreement(a *models.Agreement, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Shartnoma #%d", a.ID), false)
	pdf.SetAuthor("Tur Admin", false)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// ===== Заголовок
	pdf.SetFont(g.fontName, "B", 18)
	pdf.CellFormat(0, 10, "SHARTNOMA", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 12)
	sub := fmt.Sprintf("# %06d  /  %s", a.ID, time.Now().Format("02.01.2006"))
	pdf.CellFormat(0, 7, sub, "", 1, "C", false, 0, "")
	g.hr(pdf)
	pdf.Ln(3)

	// ===== Клиент
	g.sectionTitle(pdf, "Mijoz")
	g.kvLine(pdf, "Mijoz", a.ClientName)
	if a.ClientRelatives != "" {
		g.kvLine(pdf, "Mijoz yaqinlari", a.ClientRelatives)
	}
	g.kvLine(pdf, "Telefon", strings.Join(a.PhoneNumbers, ", "))
	pdf.Ln(2)
	g.hr(pdf)

	// ===== Тур
	g.sectionTitle(pdf, "Tur")
	g.kvLine(pdf, "Reys", a.FlightDate)
	g.kvLine(pdf, "Necha kunga", fmt.Sprintf("%d", a.DurationOfStay))
	g.kvLine(pdf, "Paket / Tarif", a.TariffName)
	g.kvLine(pdf, "Xona turi", a.RoomType)
	g.kvLine(pdf, "Transport", a.Transportation)
	pdf.Ln(2)
	g.hr(pdf)

	// ===== Оплата
	g.sectionTitle(pdf, "To'lov")
	g.kvLine(pdf, "Valyuta kursi", format.FormatNumber(a.ExchangeRate))
	g.kvLine(pdf, "Umumiy narxi", format.FormatNumber(a.TotalPrice))
	g.kvLine(pdf, "To'langan", format.FormatNumber(a.PaymentPaid))
	g.kvLine(pdf, "Qoldiq", format.FormatNumber(a.TotalPrice-a.PaymentPaid))
	pdf.Ln(2)

	if a.Comments != "" {
		g.hr(pdf)
		g.sectionTitle(pdf, "Kommentariya")
		pdf.SetFont(g.fontName, "", 11)
		pdf.MultiCell(0, 6, a.Comments, "", "L", false)
		pdf.Ln(2)
	}
	g.hr(pdf)

	// ===== Подписи
	g.sectionTitle(pdf, "Imzolar")
	pdf.Ln(6)

	lineY := pdf.GetY()
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(80, 6, "Kompaniya", "", 0, "L", false, 0, "")
	pdf.CellFormat(30, 6, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(80, 6, "Mijoz", "", 1, "L", false, 0, "")

	pdf.SetLineWidth(0.3)
	pdf.Line(20, lineY+10, 100, lineY+10)
	pdf.SetY(lineY + 12)
	pdf.SetX(20)
	pdf.Cell(80, 5, "(imzo, F.I.O.)")
	pdf.SetY(lineY + 6)
	pdf.SetX(130)
	pdf.Line(130, lineY+10, 190, lineY+10)
	pdf.SetY(lineY + 12)
	pdf.SetX(130)
	pdf.Cell(80, 5, "(imzo, F.I.O.)")

	return pdf.Output(w)
}

func (g *AgreementRenderer) sectionTitle(pdf *gofpdf.Fpdf, s string) {
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 7, s, "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
}

func (g *AgreementRenderer) kvLine(pdf *gofpdf.Fpdf, key, val string) {
	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(45, 6, key+":", "", 0, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, val, "", 1, "L", false, 0, "")
}

func (g *AgreementRenderer) hr(pdf *gofpdf.Fpdf) {
	y := pdf.GetY() + 1.5
	pdf.SetLineWidth(0.2)
	pdf.Line(20, y, 190, y)
	pdf.SetY(y + 2)
}
