package forms

import "strings"

// Действия над формой. Единственная точка мутации состояния — Apply:
// так инварианты (≥1 телефона, перепроверка поля) живут в одном месте,
// а не размазаны по обработчикам.

type Action interface{ isAction() }

// SetField — записать значение поля и перепроверить только его.
type SetField struct {
	Name  string
	Value string
}

// SetExchangeRate — сырой ввод курса, проходит через санитайзер.
type SetExchangeRate struct{ Raw string }

// AddPhone — добавить пустую строку телефона в конец.
type AddPhone struct{}

// SetPhone — записать телефон по индексу.
type SetPhone struct {
	Index int
	Value string
}

// RemovePhone — убрать телефон по индексу; при единственной записи — no-op.
type RemovePhone struct{ Index int }

// SetTakenAway — чекбокс "старый договор забрали" (только режим правки).
type SetTakenAway struct{ Value bool }

func (SetField) isAction()        {}
func (SetExchangeRate) isAction() {}
func (AddPhone) isAction()        {}
func (SetPhone) isAction()        {}
func (RemovePhone) isAction()     {}
func (SetTakenAway) isAction()    {}

func (f *Form) Apply(action Action) {
	switch a := action.(type) {
	case SetField:
		f.setField(a.Name, a.Value)
		f.revalidateField(a.Name)
	case SetExchangeRate:
		f.ExchangeRate = SanitizeExchangeRate(a.Raw)
		f.ExchangeEditable = true
		f.revalidateField("exchange_rate")
	case AddPhone:
		f.PhoneNumbers = append(f.PhoneNumbers, "")
	case SetPhone:
		if a.Index >= 0 && a.Index < len(f.PhoneNumbers) {
			f.PhoneNumbers[a.Index] = a.Value
		}
	case RemovePhone:
		if len(f.PhoneNumbers) > 1 && a.Index >= 0 && a.Index < len(f.PhoneNumbers) {
			f.PhoneNumbers = append(f.PhoneNumbers[:a.Index], f.PhoneNumbers[a.Index+1:]...)
		}
	case SetTakenAway:
		f.PreviousAgreementTakenAway = a.Value
	}
}

func (f *Form) revalidateField(name string) {
	if !isRequired(name) {
		return
	}
	if strings.TrimSpace(f.field(name)) == "" {
		f.Errors[name] = fieldLabel(name) + " is required."
		return
	}
	delete(f.Errors, name)
}
