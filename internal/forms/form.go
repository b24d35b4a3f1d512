package forms

import (
	"strconv"
	"strings"

	"turadmin/internal/models"
)

// DefaultExchangeRate — стартовый курс USD/UZS в новой форме.
const DefaultExchangeRate = "12950"

// Поля, без которых договор не отправляется. Порядок важен:
// Validate возвращает первое нарушение.
var requiredFields = []string{
	"flight_date",
	"duration_of_stay",
	"client_name",
	"tariff_name",
	"room_type",
	"transportation",
	"exchange_rate",
	"total_price",
	"payment_paid",
	"responsible_user_id",
}

// Form — состояние формы договора. Все поля держим строками,
// чтобы частичный ввод оставался редактируемым; числа появляются
// только в Payload. Инварианты: PhoneNumbers всегда ≥1 элемента.
type Form struct {
	FlightDate                 string
	DurationOfStay             string
	ClientName                 string
	ClientRelatives            string
	TariffName                 string
	RoomType                   string
	Transportation             string
	ExchangeRate               string
	TotalPrice                 string
	PaymentPaid                string
	PhoneNumbers               []string
	ResponsibleUserID          string
	PreviousAgreementTakenAway bool
	Comments                   string

	Errors           map[string]string
	Submitting       bool
	ExchangeEditable bool
}

func New() *Form {
	return &Form{
		RoomType:     models.RoomDouble,
		ExchangeRate: DefaultExchangeRate,
		PhoneNumbers: []string{""},
		Errors:       map[string]string{},
	}
}

// FromAgreement — форма режима редактирования из записи API.
func FromAgreement(a *models.Agreement) *Form {
	f := New()
	f.FlightDate = a.FlightDate
	if a.DurationOfStay != 0 {
		f.DurationOfStay = strconv.Itoa(a.DurationOfStay)
	}
	f.ClientName = a.ClientName
	f.ClientRelatives = a.ClientRelatives
	f.TariffName = a.TariffName
	if a.RoomType != "" {
		f.RoomType = a.RoomType
	}
	f.Transportation = a.Transportation
	f.ExchangeRate = trimFloat(a.ExchangeRate)
	f.TotalPrice = trimFloat(a.TotalPrice)
	f.PaymentPaid = trimFloat(a.PaymentPaid)
	if len(a.PhoneNumbers) > 0 {
		f.PhoneNumbers = append([]string(nil), a.PhoneNumbers...)
	}
	if a.ResponsibleUserID != nil {
		f.ResponsibleUserID = strconv.Itoa(*a.ResponsibleUserID)
	}
	if a.PreviousAgreementTakenAway != nil {
		f.PreviousAgreementTakenAway = *a.PreviousAgreementTakenAway
	}
	f.Comments = a.Comments
	return f
}

// Validate — первое пустое обязательное поле либо пустой список
// телефонов. Пустая строка == форма валидна.
func (f *Form) Validate() string {
	for _, name := range requiredFields {
		if strings.TrimSpace(f.field(name)) == "" {
			return fieldLabel(name) + " is required."
		}
	}
	if f.allPhonesBlank() {
		return "At least one phone number is required."
	}
	return ""
}

func (f *Form) allPhonesBlank() bool {
	for _, n := range f.PhoneNumbers {
		if strings.TrimSpace(n) != "" {
			return false
		}
	}
	return true
}

// Payload — тело запроса к API: пустые телефоны отброшены,
// денежные поля приведены к числам.
func (f *Form) Payload() models.Agreement {
	a := models.Agreement{
		FlightDate:      strings.TrimSpace(f.FlightDate),
		ClientName:      strings.TrimSpace(f.ClientName),
		ClientRelatives: strings.TrimSpace(f.ClientRelatives),
		TariffName:      strings.TrimSpace(f.TariffName),
		RoomType:        f.RoomType,
		Transportation:  strings.TrimSpace(f.Transportation),
		ExchangeRate:    toFloat(f.ExchangeRate),
		TotalPrice:      toFloat(f.TotalPrice),
		PaymentPaid:     toFloat(f.PaymentPaid),
		Comments:        f.Comments,
	}
	if n, err := strconv.Atoi(strings.TrimSpace(f.DurationOfStay)); err == nil {
		a.DurationOfStay = n
	}
	for _, num := range f.PhoneNumbers {
		if strings.TrimSpace(num) != "" {
			a.PhoneNumbers = append(a.PhoneNumbers, strings.TrimSpace(num))
		}
	}
	if id, err := strconv.Atoi(strings.TrimSpace(f.ResponsibleUserID)); err == nil {
		a.ResponsibleUserID = &id
	}
	return a
}

// SanitizeExchangeRate — только цифры и не более одной точки,
// после точки не более двух знаков. Результат остаётся строкой,
// чтобы не ломать незавершённый ввод вроде "12950.".
func SanitizeExchangeRate(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	value := b.String()

	parts := strings.Split(value, ".")
	if len(parts) > 2 {
		value = parts[0] + "." + parts[1]
	}
	if len(parts) > 1 && len(parts[1]) > 2 {
		value = parts[0] + "." + parts[1][:2]
	}
	return value
}

func (f *Form) field(name string) string {
	switch name {
	case "flight_date":
		return f.FlightDate
	case "duration_of_stay":
		return f.DurationOfStay
	case "client_name":
		return f.ClientName
	case "client_relatives":
		return f.ClientRelatives
	case "tariff_name":
		return f.TariffName
	case "room_type":
		return f.RoomType
	case "transportation":
		return f.Transportation
	case "exchange_rate":
		return f.ExchangeRate
	case "total_price":
		return f.TotalPrice
	case "payment_paid":
		return f.PaymentPaid
	case "responsible_user_id":
		return f.ResponsibleUserID
	case "comments":
		return f.Comments
	}
	return ""
}

func (f *Form) setField(name, value string) {
	switch name {
	case "flight_date":
		f.FlightDate = value
	case "duration_of_stay":
		f.DurationOfStay = value
	case "client_name":
		f.ClientName = value
	case "client_relatives":
		f.ClientRelatives = value
	case "tariff_name":
		f.TariffName = value
	case "room_type":
		f.RoomType = value
	case "transportation":
		f.Transportation = value
	case "exchange_rate":
		f.ExchangeRate = value
	case "total_price":
		f.TotalPrice = value
	case "payment_paid":
		f.PaymentPaid = value
	case "responsible_user_id":
		f.ResponsibleUserID = value
	case "comments":
		f.Comments = value
	}
}

func fieldLabel(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}

func isRequired(name string) bool {
	for _, r := range requiredFields {
		if r == name {
			return true
		}
	}
	return false
}

func toFloat(s string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v
}

func trimFloat(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
