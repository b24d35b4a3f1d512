package models

// Типы размещения, которые принимает API.
const (
	RoomDouble = "DOUBLE"
	RoomTriple = "TRIPLE"
	RoomQuad   = "QUAD"
)

// Agreement — договор на тур. Хранится на стороне API, id назначает сервер.
type Agreement struct {
	ID                         int      `json:"id,omitempty"`
	FlightDate                 string   `json:"flight_date"`
	DurationOfStay             int      `json:"duration_of_stay"`
	ClientName                 string   `json:"client_name"`
	ClientRelatives            string   `json:"client_relatives,omitempty"`
	TariffName                 string   `json:"tariff_name"`
	RoomType                   string   `json:"room_type"`
	Transportation             string   `json:"transportation"`
	ExchangeRate               float64  `json:"exchange_rate"`
	TotalPrice                 float64  `json:"total_price"`
	PaymentPaid                float64  `json:"payment_paid"`
	PhoneNumbers               []string `json:"phone_numbers"`
	ResponsibleUserID          *int     `json:"responsible_user_id,omitempty"`
	PreviousAgreementTakenAway *bool    `json:"previous_agreement_taken_away,omitempty"`
	Comments                   string   `json:"comments,omitempty"`
	CreatedBy                  *int     `json:"created_by,omitempty"`
}
